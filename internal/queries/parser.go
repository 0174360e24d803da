package queries

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/surya/job-search-agent/internal/llm"
	"github.com/surya/job-search-agent/internal/schemas"
	"github.com/surya/job-search-agent/internal/types"
)

// ParseQueryList parses a model reply into search queries. Only a literal
// JSON array of strings is accepted (code fences are stripped first); the
// reply is never evaluated as anything richer. Entries that do not split as
// "Role | Location" are dropped individually; zero survivors is an error.
func ParseQueryList(reply string) ([]types.SearchQuery, error) {
	payload := llm.CleanCodeFence(reply)

	if err := schemas.Validate(schemas.QueryList, []byte(payload)); err != nil {
		return nil, err
	}

	var entries []string
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, fmt.Errorf("reply is not a string array: %w", err)
	}

	parsed := make([]types.SearchQuery, 0, len(entries))
	for _, entry := range entries {
		q, err := types.ParseSearchQuery(entry)
		if err != nil {
			log.Printf("[QUERIES] dropping malformed entry: %v", err)
			continue
		}
		parsed = append(parsed, q)
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("no usable queries in model reply")
	}

	return parsed, nil
}
