// Package splitplan computes the parts a PDF split run should produce and
// verifies the written files against them.
package splitplan

import (
	"errors"
	"fmt"

	"github.com/kpauljoseph/pagecheck/pkg/models"
)

var ErrInvalidPlan = errors.New("invalid split plan")

// IntroRange is a 1-based inclusive page range repeated at the start of every part.
type IntroRange struct {
	Start int
	End   int
}

func (r IntroRange) Pages() int {
	return r.End - r.Start + 1
}

// Plan divides the pages after the intro into parts contiguous ranges.
// The first (body % parts) parts get one extra page.
func Plan(total, parts int, intro *IntroRange) ([]models.PartRange, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: parts must be positive, got %d", ErrInvalidPlan, parts)
	}

	introPages := 0
	start := 1
	if intro != nil {
		if intro.Start <= 0 || intro.End < intro.Start {
			return nil, fmt.Errorf("%w: intro range %d-%d", ErrInvalidPlan, intro.Start, intro.End)
		}
		if intro.End > total {
			return nil, fmt.Errorf("%w: intro ends at page %d but source has %d pages", ErrInvalidPlan, intro.End, total)
		}
		introPages = intro.Pages()
		start = intro.End + 1
	}

	body := total - introPages
	if body < parts {
		return nil, fmt.Errorf("%w: %d body pages cannot fill %d parts", ErrInvalidPlan, body, parts)
	}

	base := body / parts
	remainder := body % parts

	ranges := make([]models.PartRange, 0, parts)
	for i := 0; i < parts; i++ {
		count := base
		if i < remainder {
			count++
		}

		part := models.PartRange{
			Index:     i + 1,
			StartPage: start,
			EndPage:   start + count - 1,
			PageCount: count,
		}
		if intro != nil {
			part.IntroStart = intro.Start
			part.IntroEnd = intro.End
			part.WithIntro = true
		}

		ranges = append(ranges, part)
		start = part.EndPage + 1
	}

	return ranges, nil
}

func PartFileName(basename string, index int) string {
	return fmt.Sprintf("%s_part%d.pdf", basename, index)
}

// Verify pairs every planned part with the result for its output file.
// When several results share a file name the first one wins.
func Verify(plan []models.PartRange, results []models.CheckResult, basename string) []models.PartVerification {
	byFile := make(map[string]models.CheckResult, len(results))
	for _, r := range results {
		if _, seen := byFile[r.File]; !seen {
			byFile[r.File] = r
		}
	}

	verifications := make([]models.PartVerification, 0, len(plan))
	for _, part := range plan {
		name := PartFileName(basename, part.Index)
		v := models.PartVerification{
			File:     name,
			Expected: part.ExpectedPages(),
		}

		r, ok := byFile[name]
		switch {
		case !ok:
			v.Error = "file not found"
		case r.Failed():
			v.Error = r.Error
		default:
			v.Actual = r.PageCount
		}

		verifications = append(verifications, v)
	}

	return verifications
}
