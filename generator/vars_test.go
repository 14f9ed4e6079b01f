package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	lines []string
}

func (r *recorder) P(v ...any) {
	r.lines = append(r.lines, fmt.Sprint(v...))
}

func TestVars_Expand(t *testing.T) {
	v := Vars{"msg": "Order", "prop": "Items"}
	assert.Equal(t, "func (m *Order) Items()", v.Expand("func (m *$msg$) $prop$()"))
	assert.Equal(t, "no vars", v.Expand("no vars"))
	assert.Equal(t, "$Upper$", v.Expand("$Upper$"))
}

func TestVars_ExpandUnknown(t *testing.T) {
	assert.Panics(t, func() {
		Vars{}.Expand("$missing$")
	})
}

func TestVars_With(t *testing.T) {
	base := Vars{"msg": "Order"}
	ext := base.With("prop", "Items", "msg", "Cart")
	assert.Equal(t, Vars{"msg": "Cart", "prop": "Items"}, ext)
	assert.Equal(t, Vars{"msg": "Order"}, base)
}

func TestPV(t *testing.T) {
	r := &recorder{}
	pv(r, Vars{"name": "items"}, "m.$name$_.Reset()", "")
	assert.Equal(t, []string{"m.items_.Reset()", ""}, r.lines)
}
