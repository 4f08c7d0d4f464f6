package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tsexpand/internal/adapter"
	"github.com/mouse-blink/tsexpand/internal/adapter/mocks"
	m "github.com/mouse-blink/tsexpand/internal/model"
)

func newBaseHost() *adapter.MemorySourceHost {
	host := adapter.NewMemorySourceHost("/work")
	host.AddFile("/work/a.ts", "type A = 1;")
	host.AddFile("/work/lib/b.ts", "type B = 2;")

	return host
}

func TestAugmentedHost_ReadFile(t *testing.T) {
	t.Run("prepends code to the designated unit", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{})

		content, ok := host.ReadFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type X = A;\ntype A = 1;", content)
	})

	t.Run("keeps other units byte-identical", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{})

		content, ok := host.ReadFile("/work/lib/b.ts")
		require.True(t, ok)
		require.Equal(t, "type B = 2;", content)
	})

	t.Run("matches the designated unit by cleaned name", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{})

		content, ok := host.ReadFile("/work/lib/../a.ts")
		require.True(t, ok)
		require.Equal(t, "type X = A;\ntype A = 1;", content)
	})

	t.Run("propagates absence of the designated unit", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/missing.ts", "type X = A;", m.HostOverrides{})

		content, ok := host.ReadFile("/work/missing.ts")
		require.False(t, ok)
		require.Empty(t, content)
	})

	t.Run("uses the read override", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{
			ReadFile: func(name string) (string, bool) {
				if name == "/work/a.ts" {
					return "type A = 3;", true
				}

				return "", false
			},
		})

		content, ok := host.ReadFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type X = A;\ntype A = 3;", content)

		_, ok = host.ReadFile("/work/lib/b.ts")
		require.False(t, ok)
	})

	t.Run("override reporting absence wins over the base host", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{
			ReadFile: func(string) (string, bool) { return "", false },
		})

		_, ok := host.ReadFile("/work/a.ts")
		require.False(t, ok)
	})
}

func TestAugmentedHost_GetSourceFile(t *testing.T) {
	t.Run("builds the unit from the augmented content", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{})

		unit, ok := host.GetSourceFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, &m.SourceUnit{FileName: "/work/a.ts", Text: "type X = A;\ntype A = 1;"}, unit)
	})

	t.Run("augments the override's unit", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{
			GetSourceFile: func(name string) (*m.SourceUnit, bool) {
				return &m.SourceUnit{FileName: name, Text: "type A = 4;"}, true
			},
		})

		unit, ok := host.GetSourceFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type X = A;\ntype A = 4;", unit.Text)

		other, ok := host.GetSourceFile("/work/lib/b.ts")
		require.True(t, ok)
		require.Equal(t, "type A = 4;", other.Text)
	})

	t.Run("override returning nothing is absence", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{
			GetSourceFile: func(string) (*m.SourceUnit, bool) { return nil, true },
		})

		_, ok := host.GetSourceFile("/work/a.ts")
		require.False(t, ok)
	})

	t.Run("missing unit is absent", func(t *testing.T) {
		host := NewAugmentedHost(newBaseHost(), "/work/a.ts", "type X = A;", m.HostOverrides{})

		_, ok := host.GetSourceFile("/work/none.ts")
		require.False(t, ok)
	})
}

func TestAugmentedHost_Delegation(t *testing.T) {
	base := newBaseHost()

	t.Run("base host", func(t *testing.T) {
		host := NewOverrideHost(base, m.HostOverrides{})

		require.True(t, host.FileExists("/work/a.ts"))
		require.False(t, host.FileExists("/work/none.ts"))
		require.True(t, host.DirectoryExists("/work/lib"))
		require.Equal(t, []string{"lib"}, host.GetDirectories("/work"))
		require.Equal(t, "/work/a.ts", host.Realpath("/work/./a.ts"))
		require.Equal(t, "/work", host.GetCurrentDirectory())
	})

	t.Run("overrides", func(t *testing.T) {
		host := NewOverrideHost(base, m.HostOverrides{
			FileExists:          func(string) bool { return false },
			DirectoryExists:     func(string) bool { return false },
			GetDirectories:      func(string) []string { return []string{"x"} },
			Realpath:            func(string) string { return "/real" },
			GetCurrentDirectory: func() string { return "/elsewhere" },
		})

		require.False(t, host.FileExists("/work/a.ts"))
		require.False(t, host.DirectoryExists("/work/lib"))
		require.Equal(t, []string{"x"}, host.GetDirectories("/work"))
		require.Equal(t, "/real", host.Realpath("/work/a.ts"))
		require.Equal(t, "/elsewhere", host.GetCurrentDirectory())
	})

	t.Run("every operation reaches the base host", func(t *testing.T) {
		mockHost := mocks.NewMockSourceHost(t)
		mockHost.EXPECT().FileExists("/m/a.ts").Return(true).Once()
		mockHost.EXPECT().ReadFile("/m/a.ts").Return("type A = 1;", true).Once()
		mockHost.EXPECT().DirectoryExists("/m").Return(true).Once()
		mockHost.EXPECT().GetDirectories("/m").Return([]string{"lib"}).Once()
		mockHost.EXPECT().Realpath("/m/a.ts").Return("/real/a.ts").Once()
		mockHost.EXPECT().GetCurrentDirectory().Return("/m").Once()

		host := NewAugmentedHost(mockHost, "/m/a.ts", "type X = A;", m.HostOverrides{})

		require.True(t, host.FileExists("/m/a.ts"))

		content, ok := host.ReadFile("/m/a.ts")
		require.True(t, ok)
		require.Equal(t, "type X = A;\ntype A = 1;", content)

		require.True(t, host.DirectoryExists("/m"))
		require.Equal(t, []string{"lib"}, host.GetDirectories("/m"))
		require.Equal(t, "/real/a.ts", host.Realpath("/m/a.ts"))
		require.Equal(t, "/m", host.GetCurrentDirectory())
	})

	t.Run("override host never augments", func(t *testing.T) {
		host := NewOverrideHost(base, m.HostOverrides{})

		content, ok := host.ReadFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type A = 1;", content)
	})
}

func TestRawTextOverrides(t *testing.T) {
	base := newBaseHost()
	overrides := RawTextOverrides(base, m.HostOverrides{}, "/work/expand-my-type-1.ts", "type R = 5;")

	t.Run("serves the raw text under the synthetic name", func(t *testing.T) {
		host := NewAugmentedHost(base, "/work/expand-my-type-1.ts", "type X = R;", overrides)

		require.True(t, host.FileExists("/work/expand-my-type-1.ts"))

		content, ok := host.ReadFile("/work/expand-my-type-1.ts")
		require.True(t, ok)
		require.Equal(t, "type X = R;\ntype R = 5;", content)

		unit, ok := host.GetSourceFile("/work/expand-my-type-1.ts")
		require.True(t, ok)
		require.Equal(t, "type X = R;\ntype R = 5;", unit.Text)
	})

	t.Run("leaves other units to the base host", func(t *testing.T) {
		host := NewAugmentedHost(base, "/work/expand-my-type-1.ts", "type X = R;", overrides)

		content, ok := host.ReadFile("/work/lib/b.ts")
		require.True(t, ok)
		require.Equal(t, "type B = 2;", content)

		unit, ok := host.GetSourceFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type A = 1;", unit.Text)
		require.False(t, host.FileExists("/work/none.ts"))
	})

	t.Run("chains caller overrides", func(t *testing.T) {
		chained := RawTextOverrides(base, m.HostOverrides{
			GetSourceFile: func(name string) (*m.SourceUnit, bool) {
				return &m.SourceUnit{FileName: name, Text: "type O = 6;"}, true
			},
		}, "/work/expand-my-type-2.ts", "type R = 5;")

		unit, ok := chained.GetSourceFile("/work/a.ts")
		require.True(t, ok)
		require.Equal(t, "type O = 6;", unit.Text)

		unit, ok = chained.GetSourceFile("/work/expand-my-type-2.ts")
		require.True(t, ok)
		require.Equal(t, "type R = 5;", unit.Text)
	})
}
