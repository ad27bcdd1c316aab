package validate

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentUse runs every validator from many goroutines against one
// shared Rules value and the package defaults. Run with -race.
func TestConcurrentUse(t *testing.T) {
	shared := Rules{
		HandleMaxLen:      12,
		Reserved:          []string{"root", "Staff"},
		DisplayNameMaxLen: 20,
		DescriptionMaxLen: 40,
		MaxYear:           2100,
		MaxSkew:           time.Minute,
	}
	past := segment(testNow.Add(-time.Hour))
	future := segment(testNow.Add(time.Hour))
	id := uuidV7(testNow.Add(-time.Minute)).String()

	checks := map[string]func() error{
		"handle ok":          func() error { return shared.Handle("alice") },
		"handle long":        func() error { return shared.Handle(strings.Repeat("a", 13)) },
		"handle reserved":    func() error { return shared.Handle("STAFF") },
		"default handle":     func() error { return Handle(strings.Repeat("a", 13)) },
		"name ok":            func() error { return shared.DisplayName("Zoë") },
		"name bidi":          func() error { return DisplayName("a\u202eb") },
		"desc long":          func() error { return shared.Description(strings.Repeat("x", 41)) },
		"desc ok":            func() error { return Description("line\nline") },
		"tag date leap":      func() error { return shared.TagDate(Date{Year: 2024, Month: 2, Day: 29}) },
		"tag date year":      func() error { return shared.TagDate(Date{Year: 2200}) },
		"tag date month":     func() error { return TagDate(Date{Year: 2024, Month: 13}) },
		"parse tag date":     func() error { _, err := shared.ParseTagDate("2023-02-29"); return err },
		"timestamp past":     func() error { _, err := shared.TimestampComponent(past, testNow); return err },
		"timestamp future":   func() error { _, err := TimestampComponent(future, testNow); return err },
		"timestamp bad char": func() error { _, err := shared.TimestampComponent("01HQ3K5Z8U", testNow); return err },
		"uuid":               func() error { _, err := shared.IDTimestamp(id, testNow); return err },
	}

	want := make(map[string]Rule, len(checks))
	for name, fn := range checks {
		want[name] = RuleOf(fn())
	}
	assert.Equal(t, RuleReserved, want["handle reserved"])
	assert.Equal(t, RuleTooLong, want["handle long"])
	assert.Equal(t, RuleInFuture, want["timestamp future"])
	assert.Equal(t, Rule(""), want["uuid"])

	const workers, rounds = 16, 200
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				for name, fn := range checks {
					if !assert.Equal(t, want[name], RuleOf(fn()), name) {
						return
					}
				}
				if !assert.Equal(t, "alice_smith", shared.SuggestHandle("alice smith")) {
					return
				}
				_ = shared.Effective()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 12, shared.HandleMaxLen, "rules must not be mutated by use")
	assert.Equal(t, []string{"root", "Staff"}, shared.Reserved)
}
