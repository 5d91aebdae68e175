package acceptance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kpauljoseph/pagecheck/pkg/models"
)

// ExpectedFile is the recorded outcome for one checked file.
type ExpectedFile struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages,omitempty"`
	Error    bool   `json:"error,omitempty"`
}

type ExpectationStore struct {
	path          string
	updateResults bool
	expected      map[string]ExpectedFile // filename -> outcome
}

func NewExpectationStore(testDataPath string) *ExpectationStore {
	return &ExpectationStore{
		path:          filepath.Join(testDataPath, "expected_pages.json"),
		updateResults: os.Getenv("UPDATE_TEST_DATA") == "true",
		expected:      make(map[string]ExpectedFile),
	}
}

func (s *ExpectationStore) Load() error {
	if s.updateResults {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read expectations file: %w", err)
	}

	var list []ExpectedFile
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to parse expectations file: %w", err)
	}

	for _, e := range list {
		s.expected[e.Filename] = e
	}

	return nil
}

func (s *ExpectationStore) Save() error {
	if !s.updateResults {
		return nil
	}

	list := make([]ExpectedFile, 0, len(s.expected))
	for _, e := range s.expected {
		list = append(list, e)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Filename < list[j].Filename
	})

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal expectations: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write expectations file: %w", err)
	}

	return nil
}

func (s *ExpectationStore) Record(r models.CheckResult) {
	if !s.updateResults {
		return
	}

	s.expected[r.File] = ExpectedFile{
		Filename: r.File,
		Pages:    r.PageCount,
		Error:    r.Failed(),
	}
}

func (s *ExpectationStore) Get(filename string) (ExpectedFile, bool) {
	e, ok := s.expected[filename]
	return e, ok
}

func (s *ExpectationStore) Len() int {
	return len(s.expected)
}

func (s *ExpectationStore) IsUpdateMode() bool {
	return s.updateResults
}
