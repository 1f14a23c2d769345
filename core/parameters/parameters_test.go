package parameters

import (
	"testing"

	"github.com/npillmayer/mdhtml/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.config")
	defer teardown()
	//
	regs := NewRegisters()
	assert.False(t, regs.B(P_SANITIZE))
	assert.Equal(t, EntitiesEscape, regs.S(P_ENTITIES))
	assert.Equal(t, 0, regs.N(P_MAXDEPTH))
	assert.Equal(t, "mdhtml.sanitize", P_SANITIZE.Key())
}

func TestFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.config")
	defer teardown()
	//
	conf := testconfig.Conf{
		"mdhtml.sanitize": "true",
		"mdhtml.entities": "Numbers",
		"mdhtml.maxdepth": "64",
	}
	regs, err := FromConfiguration(conf)
	require.NoError(t, err)
	assert.True(t, regs.B(P_SANITIZE))
	assert.Equal(t, EntitiesNumbers, regs.S(P_ENTITIES))
	assert.Equal(t, 64, regs.N(P_MAXDEPTH))
}

func TestFromConfigurationRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.config")
	defer teardown()
	//
	_, err := FromConfiguration(testconfig.Conf{"mdhtml.sanitize": "perhaps"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = FromConfiguration(testconfig.Conf{"mdhtml.entities": "named"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = FromConfiguration(testconfig.Conf{"mdhtml.maxdepth": "-3"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCloneIsIndependent(t *testing.T) {
	regs := NewRegisters()
	c := regs.Clone()
	c.Push(P_SANITIZE, true)
	assert.False(t, regs.B(P_SANITIZE))
	assert.True(t, c.B(P_SANITIZE))
}
