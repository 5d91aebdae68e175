package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pagecheck/pkg/models"
)

var _ = Describe("Result Models", func() {
	Context("CheckResult", func() {
		It("should render a successful result", func() {
			result := models.CheckResult{File: "a.pdf", PageCount: 2}

			Expect(result.Failed()).To(BeFalse())
			Expect(result.String()).To(Equal("{file: a.pdf, page_count: 2}"))
			Expect(result.SummaryLine()).To(Equal("a.pdf: 2 pages"))
		})

		It("should render a failed result", func() {
			result := models.CheckResult{File: "b.pdf", Error: "not a PDF"}

			Expect(result.Failed()).To(BeTrue())
			Expect(result.String()).To(Equal("{file: b.pdf, error: not a PDF}"))
			Expect(result.SummaryLine()).To(Equal("b.pdf: ERROR - not a PDF"))
		})
	})

	Context("PartRange", func() {
		It("should count only body pages without intro", func() {
			part := models.PartRange{Index: 1, StartPage: 1, EndPage: 7, PageCount: 7}
			Expect(part.ExpectedPages()).To(Equal(7))
		})

		It("should add intro pages when the part carries an intro", func() {
			part := models.PartRange{
				Index:      1,
				StartPage:  4,
				EndPage:    9,
				PageCount:  6,
				IntroStart: 1,
				IntroEnd:   3,
				WithIntro:  true,
			}
			Expect(part.ExpectedPages()).To(Equal(9))
		})
	})

	Context("PartVerification", func() {
		DescribeTable("SummaryLine",
			func(v models.PartVerification, ok bool, line string) {
				Expect(v.OK()).To(Equal(ok))
				Expect(v.SummaryLine()).To(Equal(line))
			},
			Entry("match",
				models.PartVerification{File: "out_part1.pdf", Expected: 5, Actual: 5},
				true, "out_part1.pdf: OK (5 pages)",
			),
			Entry("mismatch",
				models.PartVerification{File: "out_part2.pdf", Expected: 5, Actual: 20},
				false, "out_part2.pdf: MISMATCH - expected 5, got 20",
			),
			Entry("error",
				models.PartVerification{File: "out_part3.pdf", Expected: 5, Error: "file not found"},
				false, "out_part3.pdf: ERROR - file not found",
			),
		)
	})
})
