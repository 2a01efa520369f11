package model

import "encoding/json"

// SkillField carries a job's required skills. Posting sources disagree on
// the wire shape: some send a JSON array, others a single comma-delimited
// string. Both decode into the same slice; splitting and normalization of
// the comma form is the matching package's concern.
type SkillField []string

func (f *SkillField) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*f = SkillField{single}
	return nil
}

func (f SkillField) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(f))
}

// JobPosting is immutable once created; there is no update path.
type JobPosting struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	SkillsRequired SkillField `json:"skills_required"`
	PostedBy       string     `json:"posted_by"`
	Ctime          int64      `json:"ctime"`
}
