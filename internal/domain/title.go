package domain

import (
	"errors"
	"strings"
)

// Job types offered by the post-a-job form.
var JobTypes = []string{"Employment", "Internship", "Starting Up"}

// Predefined titles; anything else goes through the custom variant.
var JobTitles = []string{
	"Software Engineer",
	"Data Analyst",
	"Product Manager",
	"DevOps Engineer",
	"UI/UX Designer",
}

// JobTitle is either one of the predefined titles or a free-form custom
// one. The wire format stays a plain string; the variant only exists so
// "Other" never reaches the backend as a sentinel value.
type JobTitle struct {
	value  string
	custom bool
}

func PredefinedTitle(v string) (JobTitle, error) {
	for _, t := range JobTitles {
		if t == v {
			return JobTitle{value: v}, nil
		}
	}
	return JobTitle{}, errors.New("unknown job title: " + v)
}

func CustomTitle(v string) (JobTitle, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return JobTitle{}, errors.New("custom job title is empty")
	}
	return JobTitle{value: v, custom: true}, nil
}

func (t JobTitle) String() string { return t.value }
func (t JobTitle) IsCustom() bool { return t.custom }
