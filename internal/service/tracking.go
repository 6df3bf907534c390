package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TrackingGenerator issues customer-facing tracking numbers of the form
// <prefix><8 digits><4 alphanumeric>. The digits are the low eight decimal
// digits of the Unix millisecond clock.
type TrackingGenerator struct {
	prefix string
	now    func() time.Time
	intN   func(n int) int
}

func NewTrackingGenerator(prefix string) *TrackingGenerator {
	return &TrackingGenerator{
		prefix: prefix,
		now:    time.Now,
		intN:   rand.IntN,
	}
}

func (g *TrackingGenerator) Generate() string {
	digits := g.now().UnixMilli() % 100_000_000

	var suffix strings.Builder
	for range 4 {
		suffix.WriteByte(trackingAlphabet[g.intN(len(trackingAlphabet))])
	}

	return fmt.Sprintf("%s%08d%s", g.prefix, digits, suffix.String())
}
