package engine

import (
	"github.com/arr4n/befunge98/ip"
	"github.com/arr4n/befunge98/iochan"
	"github.com/arr4n/befunge98/op"
)

// ipContext adapts an Engine and the single IP currently executing within
// it to the op.Context interface that Handlers operate on.
type ipContext struct {
	e  *Engine
	ip *ip.IP
}

func (c *ipContext) IP() *ip.IP           { return c.ip }
func (c *ipContext) Space() op.Space      { return c.e.space }
func (c *ipContext) Input() *iochan.Input { return c.e.input }
func (c *ipContext) Output() *iochan.Output {
	return c.e.output
}
func (c *ipContext) RNG() op.RNG           { return c.e.rng }
func (c *ipContext) Clock() op.Clock       { return c.e.clock }
func (c *ipContext) Args() []string        { return c.e.args }
func (c *ipContext) Env() []string         { return c.e.env }
func (c *ipContext) Version() op.Version   { return c.e.version }
func (c *ipContext) NewIPID() int          { return c.e.newIPID() }
