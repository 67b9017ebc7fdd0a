package meta

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/col3name/kotlin-git/internal/fsio"
)

// Commit is one immutable record of the commit log.
type Commit struct {
	ID        string
	Author    string // configured username at commit time, may be empty
	Timestamp time.Time
	Message   string
}

// NewCommitID allocates a fresh globally-unique commit id.
func NewCommitID() string {
	return uuid.NewString()
}

// Log lines are tab-separated with the message last and unescaped:
// only the first three tabs split positionally, so the message may
// itself contain tabs. Newlines cannot.
const fieldSep = "\t"

// AppendCommit serializes the commit to one line and appends it to the
// log. Existing lines are never rewritten.
func (mc *Context) AppendCommit(c *Commit) error {
	if strings.Contains(c.Message, "\n") {
		return fmt.Errorf("commit message must not contain newlines")
	}

	line := strings.Join([]string{
		c.ID,
		c.Author,
		c.Timestamp.Format(time.RFC3339),
		c.Message,
	}, fieldSep) + "\n"

	f, err := fsio.OpenFile(mc.Config.LogFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open commit log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append commit %q: %w", c.ID, err)
	}
	return nil
}

// AllCommits parses every non-empty log line in file (append) order.
// A missing log means no commits.
func (mc *Context) AllCommits() ([]*Commit, error) {
	data, err := fsio.ReadFile(mc.Config.LogFile())
	if err != nil {
		if fsio.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}

	var commits []*Commit
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := parseCommitLine(line)
		if err != nil {
			return nil, fmt.Errorf("commit log line %d: %w", i+1, err)
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// LatestCommit returns the last commit in append order, or nil if the
// log is empty or absent.
func (mc *Context) LatestCommit() (*Commit, error) {
	commits, err := mc.AllCommits()
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, nil
	}
	return commits[len(commits)-1], nil
}

func parseCommitLine(line string) (*Commit, error) {
	parts := strings.SplitN(line, fieldSep, 4)
	if len(parts) < 4 {
		return nil, fmt.Errorf("malformed record %q", line)
	}
	ts, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp in record %q: %w", line, err)
	}
	return &Commit{
		ID:        parts[0],
		Author:    parts[1],
		Timestamp: ts,
		Message:   parts[3],
	}, nil
}

// SortByTimestampDesc orders commits newest-first. Equal timestamps
// keep their relative append order.
func SortByTimestampDesc(commits []*Commit) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Timestamp.After(commits[j].Timestamp)
	})
}
