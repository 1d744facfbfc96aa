package model

import "encoding/json"

// Settings holds the CAD settings returned by the API. The payload is kept as is
// in Raw; only the fields needed to render pages are decoded.
type Settings struct {
	Name    string
	Version Version
	Raw     map[string]any
}

type Version struct {
	CurrentVersion    string `json:"currentVersion"`
	CurrentCommitHash string `json:"currentCommitHash"`
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var decoded struct {
		Name    string   `json:"name"`
		Version *Version `json:"version"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = decoded.Name
	s.Raw = raw
	s.Version = Version{}
	if decoded.Version != nil {
		s.Version = *decoded.Version
	}
	return nil
}

// ShortCommitHash returns the first seven characters of the API commit hash
func (v Version) ShortCommitHash() string {
	if len(v.CurrentCommitHash) > 7 {
		return v.CurrentCommitHash[:7]
	}
	return v.CurrentCommitHash
}
