package widget

// Counter is a guest count stepper. Decrease never goes below zero,
// matching the storefront's minus button which simply stops at 0.
type Counter struct {
	n int
}

func NewCounter(start int) Counter {
	if start < 0 {
		start = 0
	}
	return Counter{n: start}
}

func (c *Counter) Increase() int {
	c.n++
	return c.n
}

func (c *Counter) Decrease() int {
	if c.n > 0 {
		c.n--
	}
	return c.n
}

func (c *Counter) Value() int { return c.n }
