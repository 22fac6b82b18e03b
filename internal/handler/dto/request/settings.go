package request

import (
	"travel-backoffice/internal/domain/setting"
)

// SettingsRequest is a partial update: only the keys present are written.
type SettingsRequest map[string]string

func (r SettingsRequest) ToUpdates() map[setting.Key]string {
	updates := make(map[setting.Key]string, len(r))
	for k, v := range r {
		updates[setting.Key(k)] = v
	}
	return updates
}
