package theme_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/page"
	"github.com/umputun/themer/app/theme"
	"github.com/umputun/themer/app/theme/mocks"
)

// memPrefs is an in-memory Preferences shared across "page loads".
type memPrefs struct {
	val    string
	stored bool
	saves  int
}

func (m *memPrefs) Load() (string, bool, error) { return m.val, m.stored, nil }

func (m *memPrefs) Save(v string) error {
	m.val, m.stored = v, true
	m.saves++
	return nil
}

func newDoc(t *testing.T) *page.Document {
	t.Helper()
	d, err := page.Parse(strings.NewReader(`<html><head></head><body><p>page</p></body></html>`))
	require.NoError(t, err)
	return d
}

func rootTheme(t *testing.T, d *page.Document) string {
	t.Helper()
	v, ok := d.RootAttr(theme.Attr)
	require.True(t, ok, "theme attribute must be set")
	return v
}

func TestSwitcher_ReadDefault(t *testing.T) {
	s := theme.New(&memPrefs{}, newDoc(t))
	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, got)
}

func TestSwitcher_ReadUnknownValue(t *testing.T) {
	s := theme.New(&memPrefs{val: "blue", stored: true}, newDoc(t))
	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, got)
}

func TestSwitcher_ApplyThenRead(t *testing.T) {
	for _, tt := range enum.ThemeValues {
		t.Run(tt.String(), func(t *testing.T) {
			prefs, doc := &memPrefs{}, newDoc(t)
			s := theme.New(prefs, doc)
			require.NoError(t, s.Apply(tt))

			got, err := s.Read()
			require.NoError(t, err)
			assert.Equal(t, tt, got)
			assert.Equal(t, tt.String(), rootTheme(t, doc))
			assert.Equal(t, tt.String(), prefs.val)
		})
	}
}

func TestSwitcher_ToggleInverse(t *testing.T) {
	for _, tt := range enum.ThemeValues {
		t.Run(tt.String(), func(t *testing.T) {
			prefs := &memPrefs{val: tt.String(), stored: true}
			s := theme.New(prefs, newDoc(t))

			first, err := s.Toggle()
			require.NoError(t, err)
			assert.Equal(t, tt.Toggle(), first)

			second, err := s.Toggle()
			require.NoError(t, err)
			assert.Equal(t, tt, second)
			assert.Equal(t, tt.String(), prefs.val)
		})
	}
}

func TestSwitcher_ToggleRawValues(t *testing.T) {
	tests := []struct {
		name   string
		prefs  *memPrefs
		expect enum.Theme
	}{
		{name: "unset reads light, goes dark", prefs: &memPrefs{}, expect: enum.ThemeDark},
		{name: "light goes dark", prefs: &memPrefs{val: "light", stored: true}, expect: enum.ThemeDark},
		{name: "dark goes light", prefs: &memPrefs{val: "dark", stored: true}, expect: enum.ThemeLight},
		{name: "garbage goes light", prefs: &memPrefs{val: "blue", stored: true}, expect: enum.ThemeLight},
		{name: "upper case light goes dark", prefs: &memPrefs{val: "LIGHT", stored: true}, expect: enum.ThemeDark},
		{name: "mixed case dark goes light", prefs: &memPrefs{val: "Dark", stored: true}, expect: enum.ThemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := newDoc(t)
			got, err := theme.New(tc.prefs, doc).Toggle()
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
			assert.Equal(t, tc.expect.String(), tc.prefs.val)
			assert.Equal(t, tc.expect.String(), rootTheme(t, doc))
		})
	}
}

func TestSwitcher_EnsureControlIdempotent(t *testing.T) {
	doc := newDoc(t)
	s := theme.New(&memPrefs{}, doc)
	require.NoError(t, s.EnsureControl())
	require.NoError(t, s.EnsureControl())
	assert.Equal(t, 1, doc.CountClass(theme.ControlClass))
}

func TestSwitcher_EnsureControlKeepsExisting(t *testing.T) {
	doc, err := page.Parse(strings.NewReader(`<html><body><button class="theme-toggle">mine</button></body></html>`))
	require.NoError(t, err)
	require.NoError(t, theme.New(&memPrefs{}, doc).EnsureControl())
	assert.Equal(t, 1, doc.CountClass(theme.ControlClass))
	assert.Contains(t, doc.String(), ">mine</button>")
}

func TestSwitcher_SchemeChanged(t *testing.T) {
	t.Run("unset follows os dark", func(t *testing.T) {
		prefs, doc := &memPrefs{}, newDoc(t)
		got, changed, err := theme.New(prefs, doc).SchemeChanged(true)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, enum.ThemeDark, got)
		assert.Equal(t, "dark", rootTheme(t, doc))
		assert.Equal(t, "dark", prefs.val)
		assert.True(t, prefs.stored)
	})

	t.Run("unset follows os light", func(t *testing.T) {
		prefs := &memPrefs{}
		got, changed, err := theme.New(prefs, newDoc(t)).SchemeChanged(false)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, enum.ThemeLight, got)
		assert.Equal(t, "light", prefs.val)
	})

	for _, tt := range enum.ThemeValues {
		t.Run("explicit "+tt.String()+" wins", func(t *testing.T) {
			prefs, doc := &memPrefs{val: tt.String(), stored: true}, newDoc(t)
			got, changed, err := theme.New(prefs, doc).SchemeChanged(tt == enum.ThemeLight)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, tt, got)
			assert.Equal(t, tt.String(), prefs.val)
			assert.Zero(t, prefs.saves)
			_, reflected := doc.RootAttr(theme.Attr)
			assert.False(t, reflected, "document untouched")
		})
	}
}

func TestSwitcher_LoadFreshDoesNotPersist(t *testing.T) {
	prefs, doc := &memPrefs{}, newDoc(t)
	got, err := theme.New(prefs, doc).Load()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeLight, got)
	assert.Equal(t, "light", rootTheme(t, doc))
	assert.False(t, prefs.stored)
	assert.Equal(t, 1, doc.CountClass(theme.ControlClass))
}

func TestSwitcher_LoadStoredReapplies(t *testing.T) {
	prefs, doc := &memPrefs{val: "dark", stored: true}, newDoc(t)
	got, err := theme.New(prefs, doc).Load()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeDark, got)
	assert.Equal(t, "dark", rootTheme(t, doc))
	assert.Equal(t, 1, prefs.saves)
}

func TestSwitcher_LoadReadsPreferenceOnce(t *testing.T) {
	prefs := &mocks.PreferencesMock{
		LoadFunc: func() (string, bool, error) { return "dark", true, nil },
		SaveFunc: func(string) error { return nil },
	}
	doc := newDoc(t)
	got, err := theme.New(prefs, doc).Load()
	require.NoError(t, err)
	assert.Equal(t, enum.ThemeDark, got)
	assert.Len(t, prefs.LoadCalls(), 1)
	require.Len(t, prefs.SaveCalls(), 1)
	assert.Equal(t, "dark", prefs.SaveCalls()[0].Value)
}

func TestSwitcher_EndToEnd(t *testing.T) {
	prefs := &memPrefs{} // survives reloads, like browser storage

	// fresh session
	doc := newDoc(t)
	bus := theme.NewMediaBus()
	theme.New(prefs, doc).Bind(bus)
	require.NoError(t, bus.Ready())
	assert.Equal(t, "light", rootTheme(t, doc))
	assert.Equal(t, 1, doc.CountClass(theme.ControlClass))

	// user clicks the control
	require.NoError(t, bus.Activate())
	assert.Equal(t, "dark", rootTheme(t, doc))
	assert.Equal(t, "dark", prefs.val)

	// reload
	doc = newDoc(t)
	bus = theme.NewMediaBus()
	theme.New(prefs, doc).Bind(bus)
	require.NoError(t, bus.Ready())
	assert.Equal(t, "dark", rootTheme(t, doc))

	// os switches to light, explicit choice wins
	require.NoError(t, bus.SchemeChange(false))
	assert.Equal(t, "dark", rootTheme(t, doc))
	assert.Equal(t, "dark", prefs.val)
}

func TestSwitcher_BindWithoutMedia(t *testing.T) {
	bus := theme.NewBus()
	var src theme.EventSource = bus
	_, isMedia := src.(theme.MediaSource)
	assert.False(t, isMedia)

	prefs, doc := &memPrefs{}, newDoc(t)
	theme.New(prefs, doc).Bind(bus)
	require.NoError(t, bus.Ready())
	require.NoError(t, bus.Activate())
	assert.Equal(t, "dark", rootTheme(t, doc))
}

func TestSwitcher_Errors(t *testing.T) {
	loadErr := errors.New("storage disabled")

	t.Run("load failure", func(t *testing.T) {
		prefs := &mocks.PreferencesMock{LoadFunc: func() (string, bool, error) { return "", false, loadErr }}
		doc := &mocks.DocumentMock{}
		s := theme.New(prefs, doc)

		_, err := s.Read()
		require.ErrorIs(t, err, loadErr)
		_, err = s.Toggle()
		require.ErrorIs(t, err, loadErr)
		_, _, err = s.SchemeChanged(true)
		require.ErrorIs(t, err, loadErr)
		_, err = s.Load()
		require.ErrorIs(t, err, loadErr)
	})

	t.Run("save failure still reflects", func(t *testing.T) {
		prefs := &mocks.PreferencesMock{SaveFunc: func(string) error { return errors.New("quota exceeded") }}
		doc := &mocks.DocumentMock{SetRootAttrFunc: func(string, string) {}}
		err := theme.New(prefs, doc).Apply(enum.ThemeDark)
		require.Error(t, err)
		require.Len(t, doc.SetRootAttrCalls(), 1)
		assert.Equal(t, theme.Attr, doc.SetRootAttrCalls()[0].Name)
		assert.Equal(t, "dark", doc.SetRootAttrCalls()[0].Value)
	})

	t.Run("append failure", func(t *testing.T) {
		doc := &mocks.DocumentMock{
			HasControlFunc:    func(string) bool { return false },
			AppendControlFunc: func(theme.Control) error { return errors.New("no body") },
		}
		err := theme.New(&memPrefs{}, doc).EnsureControl()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no body")
	})

	t.Run("handler error stops the bus", func(t *testing.T) {
		prefs := &mocks.PreferencesMock{LoadFunc: func() (string, bool, error) { return "", false, loadErr }}
		bus := theme.NewBus()
		theme.New(prefs, &mocks.DocumentMock{}).Bind(bus)
		called := false
		bus.OnActivate(func() error { called = true; return nil })

		err := bus.Activate()
		require.ErrorIs(t, err, loadErr)
		assert.False(t, called)
	})
}
