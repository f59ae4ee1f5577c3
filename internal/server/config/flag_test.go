package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("all flags", func(t *testing.T) {
		os.Args = []string{"testbin",
			"-a", ":9999",
			"-d", "postgres://flags",
			"-s", "from-flags",
			"-t", "15",
			"-w", "6",
		}

		c := &Config{}
		c.LoadDefaults()
		parseFlags(c)

		assert.Equal(t, ":9999", c.Addr)
		assert.Equal(t, "postgres://flags", c.DatabaseDSN)
		assert.Equal(t, "from-flags", c.SecretKey)
		assert.Equal(t, 15*time.Minute, c.TokenValidityDuration)
		assert.Equal(t, 6, c.BcryptCost)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		c := &Config{}
		c.LoadDefaults()
		parseFlags(c)

		assert.Equal(t, ":5000", c.Addr)
		assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
		assert.Equal(t, 10, c.BcryptCost)
	})

	t.Run("unknown flags ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-z", "whatever", "-a", ":7000"}

		c := &Config{}
		c.LoadDefaults()
		parseFlags(c)

		assert.Equal(t, ":7000", c.Addr)
	})
}
