package cronparser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	cron "github.com/netresearch/go-cron"
)

const defaultTZ = "UTC"

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Parser computes next cron occurrences using go-cron.
// Parsed schedules are cached by expression and zone; it is safe for concurrent use.
type Parser struct {
	mu        sync.RWMutex
	schedules map[string]cron.Schedule
}

// New creates a new cron parser.
func New() *Parser {
	return &Parser{
		schedules: make(map[string]cron.Schedule),
	}
}

// NextAfter returns the next cron occurrence strictly after `after`.
// If tz is non-empty and the expression has no CRON_TZ=/TZ= prefix, it prepends CRON_TZ=<tz>.
// Defaults to UTC when no tz is given.
func (p *Parser) NextAfter(
	spec,
	tz string,
	after time.Time,
) (time.Time, error) {
	schedule, err := p.schedule(spec, tz)
	if err != nil {
		return time.Time{}, err
	}

	return schedule.Next(after), nil
}

func (p *Parser) schedule(spec, tz string) (cron.Schedule, error) {
	fullSpec := buildSpec(strings.TrimSpace(spec), tz)

	p.mu.RLock()
	schedule, ok := p.schedules[fullSpec]
	p.mu.RUnlock()

	if ok {
		return schedule, nil
	}

	schedule, err := _parser.Parse(fullSpec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	p.mu.Lock()
	p.schedules[fullSpec] = schedule
	p.mu.Unlock()

	return schedule, nil
}

func buildSpec(spec, tz string) string {
	if strings.HasPrefix(spec, "CRON_TZ=") || strings.HasPrefix(spec, "TZ=") {
		return spec
	}

	if tz == "" {
		tz = defaultTZ
	}

	return "CRON_TZ=" + tz + " " + spec
}
