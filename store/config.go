package store

import "strings"

type Config struct {
	file    string
	durable bool
}

type ConfigFunc = func(c *Config)

func (c *Config) File(file string) {
	file = strings.TrimSpace(file)
	if file == "" {
		panic("file can't be blank")
	}
	if strings.Contains(file, "?") {
		panic("file can't contain ?")
	}
	c.file = file
}

// Durable makes every write wait for a full fsync. Slower, but a power
// failure cannot lose acknowledged frames.
func (c *Config) Durable(durable bool) {
	c.durable = durable
}
