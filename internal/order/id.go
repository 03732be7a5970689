package order

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDGenerator produces order identifiers of the form
// PV + upper(base36(unix ms) + 5 random base36 digits).
type IDGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now, intn: rand.Intn}
}

func (g *IDGenerator) Next() string {
	var b strings.Builder
	b.WriteString("PV")
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 36))
	for i := 0; i < 5; i++ {
		b.WriteByte(base36[g.intn(len(base36))])
	}
	return strings.ToUpper(b.String())
}
