package modes

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects between development and production behavior.
type Mode uint8

const (
	ModeDevelopment Mode = iota + 1
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, bool) {
	switch s {
	case "development", "dev":
		return ModeDevelopment, true
	case "production", "prod":
		return ModeProduction, true
	}
	return 0, false
}

// ModuleForProduction is used by the command line. CSL_MODE may switch it to development.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if mode, ok := ParseMode(os.Getenv("CSL_MODE")); ok {
		return mode
	}
	return ModeProduction
}

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
