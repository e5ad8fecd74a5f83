package build

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"shinc/config"
	"shinc/misc"
)

// Values is a struct that holds variables we make available for banner
// template expansion.
type Values struct {
	// Source is the shader file name.
	Source string
	// Output is full path of produced file.
	Output string
	// Token is the shader stem.
	Token string
	App   string
	// Version of the program.
	Version string
	// Fragments lists tokens inserted into the shader.
	Fragments []string
}

type bannerTemplate struct {
	tmpl *template.Template
}

// parseBanner prepares banner template once per run. Empty text results in
// no banner.
func parseBanner(text string) (*bannerTemplate, error) {
	if len(text) == 0 {
		return nil, nil
	}
	tmpl, err := template.New(string(config.BannerTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template field %s: %w", config.BannerTemplateFieldName, err)
	}
	return &bannerTemplate{tmpl: tmpl}, nil
}

// expand returns banner to be prepended to shader text. Non empty banner
// always ends with new line.
func (b *bannerTemplate) expand(v Values) (string, error) {
	if b == nil {
		return "", nil
	}
	v.App, v.Version = misc.GetAppName(), misc.GetVersion()

	buf := new(bytes.Buffer)
	if err := b.tmpl.Execute(buf, v); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", config.BannerTemplateFieldName, err)
	}
	text := buf.String()
	if len(text) > 0 && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
