package checker

import (
	"fmt"

	"github.com/kpauljoseph/pagecheck/internal/splitplan"
	"github.com/kpauljoseph/pagecheck/pkg/models"
)

// VerifySplit recounts the fixture, plans the parts a split of it should yield
// and compares the plan with results. The verification section is printed only on success.
func (c *Checker) VerifySplit(results []models.CheckResult, parts int, intro *splitplan.IntroRange, basename string) ([]models.PartVerification, error) {
	source := c.CheckPageCount(c.fixturePath)
	if source.Failed() {
		return nil, fmt.Errorf("source unreadable: %s", source.Error)
	}

	plan, err := splitplan.Plan(source.PageCount, parts, intro)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Expecting %d parts from %d source pages", len(plan), source.PageCount)

	verifications := splitplan.Verify(plan, results, basename)
	c.printer.Verification(verifications)
	return verifications, nil
}
