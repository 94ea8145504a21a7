package espn

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

type teamsEnvelope struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team teamPayload `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type teamDetailEnvelope struct {
	Team *teamPayload `json:"team"`
}

type teamPayload struct {
	ID             flexString `json:"id"`
	Name           string     `json:"name"`
	Abbreviation   string     `json:"abbreviation"`
	Location       string     `json:"location"`
	DisplayName    string     `json:"displayName"`
	Color          *string    `json:"color"`
	AlternateColor *string    `json:"alternateColor"`
	Logos          []imageRef `json:"logos"`
	Franchise      struct {
		Venue venuePayload `json:"venue"`
	} `json:"franchise"`
}

type venuePayload struct {
	FullName string `json:"fullName"`
	Address  struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"address"`
	Grass  bool `json:"grass"`
	Indoor bool `json:"indoor"`
}

type standingsEnvelope struct {
	Children []struct {
		Standings struct {
			Entries []standingEntry `json:"entries"`
		} `json:"standings"`
	} `json:"children"`
}

type standingEntry struct {
	Team struct {
		ID flexString `json:"id"`
	} `json:"team"`
	Stats []struct {
		Name  string    `json:"name"`
		Value flexFloat `json:"value"`
	} `json:"stats"`
}

type teamStatisticsEnvelope struct {
	Results struct {
		Stats struct {
			Categories []statCategoryPayload `json:"categories"`
		} `json:"stats"`
	} `json:"results"`
}

type statCategoryPayload struct {
	Name  string `json:"name"`
	Stats []struct {
		Name         string      `json:"name"`
		DisplayValue *flexString `json:"displayValue"`
	} `json:"stats"`
}

type rosterEnvelope struct {
	Athletes []struct {
		Position string `json:"position"`
		Items    []struct {
			DisplayName string `json:"displayName"`
			Position    struct {
				DisplayName string `json:"displayName"`
			} `json:"position"`
			Jersey   flexString `json:"jersey"`
			Headshot imageRef   `json:"headshot"`
		} `json:"items"`
	} `json:"athletes"`
}

type leagueStatisticsEnvelope struct {
	Stats struct {
		Categories []struct {
			Name        string `json:"name"`
			DisplayName string `json:"displayName"`
			Leaders     []struct {
				DisplayValue flexString `json:"displayValue"`
				Team         struct {
					ID flexString `json:"id"`
				} `json:"team"`
				Athlete struct {
					DisplayName string   `json:"displayName"`
					Headshot    imageRef `json:"headshot"`
				} `json:"athlete"`
			} `json:"leaders"`
		} `json:"categories"`
	} `json:"stats"`
}

// flexString accepts a JSON string or number. Anything else decodes to "".
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		*s = ""
	case data[0] == '"':
		var text string
		if err := sonic.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = flexString(text)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*s = flexString(data)
	default:
		*s = ""
	}
	return nil
}

// flexFloat accepts a JSON number or numeric string. Anything else decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var text flexString
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(value)
	return nil
}

// imageRef reads the href of an image object. Non-object values decode to "".
type imageRef struct {
	Href string
}

func (r *imageRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		r.Href = ""
		return nil
	}
	var raw struct {
		Href flexString `json:"href"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Href = string(raw.Href)
	return nil
}
