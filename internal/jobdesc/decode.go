package jobdesc

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var (
	leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
	validate      = validator.New()
)

// Decode checks the shape of doc, resolves field aliases, decodes it and
// validates the result. Every failure is a *MalformedError.
func Decode(doc Document) (*JobDescription, error) {
	if doc == nil {
		return nil, malformed(nil, "document is empty")
	}

	if err := checkShape(doc); err != nil {
		return nil, err
	}

	var jd JobDescription
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &jd,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			textToNumber,
			textToBool,
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("create job description decoder: %w", err)
	}

	if err := decoder.Decode(resolveAliases(doc)); err != nil {
		return nil, malformed(err, err.Error())
	}

	jd.clean()

	if err := validate.Struct(jd); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return nil, malformed(err, problems...)
		}
		return nil, malformed(err, err.Error())
	}

	return &jd, nil
}

// DecodeAll wraps a single object or a list of objects into documents.
func DecodeAll(v any) ([]Document, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []Document{val}, nil
	case Document:
		return []Document{val}, nil
	case []any:
		docs := make([]Document, 0, len(val))
		for _, item := range val {
			m, _ := item.(map[string]any)
			docs = append(docs, m)
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("job descriptions must be an object or a list of objects, got %T", v)
	}
}

// resolveAliases copies doc, mapping alternative spellings produced by
// extractors onto the canonical fields.
func resolveAliases(doc Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if elig, ok := doc["eligibility_criteria"].(map[string]any); ok {
		e := make(map[string]any, len(elig))
		for k, v := range elig {
			e[k] = v
		}
		if _, has := e["fields"]; !has {
			if streams, ok := e["streams"]; ok {
				e["fields"] = streams
			}
		}
		switch degrees := e["degrees"].(type) {
		case []any, string:
			e["degrees"] = map[string]any{"required": degrees}
		}
		out["eligibility_criteria"] = e
	}

	switch exp := doc["experience_years"].(type) {
	case map[string]any:
		x := make(map[string]any, len(exp))
		for k, v := range exp {
			x[k] = v
		}
		if p, has := x["preferred"]; !has || p == nil {
			if maxYears, ok := x["max"]; ok && maxYears != nil {
				x["preferred"] = maxYears
			}
		}
		out["experience_years"] = x
	case float64, string:
		out["experience_years"] = map[string]any{"min": exp}
	}

	return out
}

// textToNumber turns strings such as "2+ years" into 2. Blank text is 0.
func textToNumber(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Float64 {
		return data, nil
	}

	s := strings.TrimSpace(data.(string))
	if s == "" {
		return 0.0, nil
	}
	num := leadingNumber.FindString(s)
	if num == "" {
		return nil, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(num, 64)
}

func textToBool(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}

	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "true", "yes", "y", "allowed":
		return true, nil
	default:
		return false, nil
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
