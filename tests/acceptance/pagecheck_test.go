package acceptance_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pagecheck/internal/checker"
	"github.com/kpauljoseph/pagecheck/internal/config"
	"github.com/kpauljoseph/pagecheck/internal/pdf"
	"github.com/kpauljoseph/pagecheck/internal/report"
	"github.com/kpauljoseph/pagecheck/internal/testutil"
	"github.com/kpauljoseph/pagecheck/pkg/logger"
	"github.com/kpauljoseph/pagecheck/tests/acceptance"
)

func getTestDataPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("Could not get current file path")
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))
	return filepath.Join(projectRoot, "tests", "acceptance", "testdata")
}

var _ = Describe("PageCheck End-to-End", Ordered, func() {
	var (
		workDir    string
		prevDir    string
		cfg        *config.Config
		store      *acceptance.ExpectationStore
		testLogger *logger.Logger
		out        *bytes.Buffer
	)

	BeforeAll(func() {
		var err error
		store = acceptance.NewExpectationStore(getTestDataPath())
		Expect(store.Load()).To(Succeed())

		workDir, err = os.MkdirTemp("", "pagecheck-acceptance-*")
		Expect(err).NotTo(HaveOccurred())

		By("Laying out a source fixture and the output of a three-part split")
		Expect(testutil.WritePDF(filepath.Join(workDir, "test", "fixtures", "test.pdf"), 20)).To(Succeed())
		Expect(testutil.WritePDF(filepath.Join(workDir, "test", "temp", "output_part1.pdf"), 7)).To(Succeed())
		Expect(testutil.WritePDF(filepath.Join(workDir, "test", "temp", "output_part2.pdf"), 7)).To(Succeed())
		Expect(testutil.WriteCorrupt(filepath.Join(workDir, "test", "temp", "output_part3.pdf"))).To(Succeed())

		prevDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(workDir)).To(Succeed())

		cfg = config.Default()
	})

	AfterAll(func() {
		Expect(os.Chdir(prevDir)).To(Succeed())
		Expect(os.RemoveAll(workDir)).To(Succeed())
		Expect(store.Save()).To(Succeed())
	})

	BeforeEach(func() {
		out = &bytes.Buffer{}
		testLogger = logger.New(
			logger.WithOutput(GinkgoWriter),
			logger.WithPrefix("[acceptance] "),
			logger.WithFlags(0),
			logger.WithLevel(logger.LevelDebug),
		)
	})

	newChecker := func(backend string) *checker.Checker {
		counter, err := pdf.NewCounter(backend)
		Expect(err).NotTo(HaveOccurred())
		return checker.New(counter, report.New(out, false), cfg.FixturePath, cfg.OutputGlob, testLogger)
	}

	for _, backend := range []string{pdf.BackendPDFCPU, pdf.BackendLedongthuc} {
		backend := backend

		Context(fmt.Sprintf("with the %s backend", backend), Label("happy-path"), func() {
			It("should check the default fixture and split outputs", func() {
				results, err := newChecker(backend).Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				By("Processing the fixture first")
				Expect(results).To(HaveLen(4))
				Expect(results[0].File).To(Equal("test.pdf"))

				By("Matching the recorded page counts")
				for _, r := range results {
					store.Record(r)
					if store.IsUpdateMode() {
						continue
					}

					expected, ok := store.Get(r.File)
					Expect(ok).To(BeTrue(), "no expectation recorded for %s", r.File)
					Expect(r.Failed()).To(Equal(expected.Error), "unexpected outcome for %s: %s", r.File, r)
					Expect(r.PageCount).To(Equal(expected.Pages))
				}

				By("Printing the documented summary")
				output := out.String()
				Expect(output).To(ContainSubstring("Checking " + filepath.Join("test", "fixtures", "test.pdf") + "..."))
				Expect(output).To(ContainSubstring("\nSummary:\ntest.pdf: 20 pages\n"))
				Expect(output).To(ContainSubstring("output_part1.pdf: 7 pages"))
				Expect(output).To(MatchRegexp(`output_part3\.pdf: ERROR - .+`))
				Expect(output).NotTo(ContainSubstring("File not found"))
			})

			It("should verify the split against the planned ranges", func() {
				chk := newChecker(backend)
				results, err := chk.Run(context.Background())
				Expect(err).NotTo(HaveOccurred())

				vs, err := chk.VerifySplit(results, 3, nil, cfg.Split.OutputBasename)
				Expect(err).NotTo(HaveOccurred())
				Expect(vs).To(HaveLen(3))

				Expect(vs[0].OK()).To(BeTrue())
				Expect(vs[1].OK()).To(BeTrue())
				Expect(vs[2].OK()).To(BeFalse())
				Expect(vs[2].Expected).To(Equal(6))

				output := out.String()
				verification := output[strings.Index(output, "Verification:"):]
				Expect(verification).To(ContainSubstring("output_part1.pdf: OK (7 pages)"))
				Expect(verification).To(ContainSubstring("output_part3.pdf: ERROR - "))
			})
		})
	}

	Context("when the split outputs disagree with the plan", func() {
		It("should report a mismatch", func() {
			chk := newChecker(pdf.BackendPDFCPU)
			results, err := chk.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())

			vs, err := chk.VerifySplit(results, 2, nil, cfg.Split.OutputBasename)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("output_part1.pdf: MISMATCH - expected 10, got 7"))
			Expect(vs[1].SummaryLine()).To(Equal("output_part2.pdf: MISMATCH - expected 10, got 7"))
		})

		It("should refuse an impossible plan", func() {
			chk := newChecker(pdf.BackendPDFCPU)
			_, err := chk.VerifySplit(nil, 30, nil, cfg.Split.OutputBasename)
			Expect(err).To(HaveOccurred())
			Expect(out.String()).NotTo(ContainSubstring("Verification:"))
		})
	})

	Context("when the fixture is missing", func() {
		It("should print a not-found notice and leave it out of the summary", func() {
			counter, err := pdf.NewCounter(pdf.BackendPDFCPU)
			Expect(err).NotTo(HaveOccurred())

			missing := filepath.Join("test", "fixtures", "absent.pdf")
			chk := checker.New(counter, report.New(out, false), missing, cfg.OutputGlob, testLogger)
			results, err := chk.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))

			output := out.String()
			Expect(output).To(HavePrefix("File not found: " + missing + "\n"))
			Expect(output).NotTo(ContainSubstring("absent.pdf:"))

			_, err = chk.VerifySplit(results, 3, nil, cfg.Split.OutputBasename)
			Expect(err).To(MatchError(ContainSubstring("source unreadable")))
		})
	})
})
