package ui

// Counter colours.
const (
	ColorPositive = "#26de81"
	ColorNegative = "#ff6b6b"
	ColorZero     = "#667eea"
)

// Counter is the click counter widget. The zero value is ready to use.
type Counter struct {
	value int
}

func (c *Counter) Increment() int {
	c.value++
	return c.value
}

func (c *Counter) Decrement() int {
	c.value--
	return c.value
}

func (c *Counter) Reset() int {
	c.value = 0
	return c.value
}

func (c *Counter) Value() int {
	return c.value
}

// Color is the display colour for the current value.
func (c *Counter) Color() string {
	switch {
	case c.value > 0:
		return ColorPositive
	case c.value < 0:
		return ColorNegative
	default:
		return ColorZero
	}
}
