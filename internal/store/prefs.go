package store

import "fyne.io/fyne/v2"

// PrefsStore keeps values in a fyne app's preferences, the desktop
// equivalent of browser local storage.
type PrefsStore struct {
	prefs fyne.Preferences
}

// NewPrefsStore wraps p.
func NewPrefsStore(p fyne.Preferences) *PrefsStore {
	return &PrefsStore{prefs: p}
}

func (ps *PrefsStore) Get(key string) ([]byte, error) {
	v := ps.prefs.String(key)
	if v == "" {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (ps *PrefsStore) Set(key string, value []byte) error {
	ps.prefs.SetString(key, string(value))
	return nil
}

func (ps *PrefsStore) Delete(key string) error {
	ps.prefs.RemoveValue(key)
	return nil
}
