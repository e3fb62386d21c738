package models

// MasterSetting is an API-key style configuration entry managed by admins.
type MasterSetting struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type MasterSettingCreate struct {
	Name     string `json:"name" validate:"required,max=128"`
	Value    string `json:"value" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type MasterSettingUpdate struct {
	Value    *string `json:"value,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// MaskedValue hides all but the last four characters of a secret.
func (s MasterSetting) MaskedValue() string {
	const visible = 4
	r := []rune(s.Value)
	if len(r) <= visible {
		return "****"
	}
	masked := make([]rune, len(r))
	for i := range r {
		if i < len(r)-visible {
			masked[i] = '*'
		} else {
			masked[i] = r[i]
		}
	}
	return string(masked)
}
