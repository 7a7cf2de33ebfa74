// Copyright 2026 The ltlequiv Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package httpserver mirrors the CLI's transform semantics as a single
// HTML form endpoint, routed through gorilla/mux, with a liveness probe.
package httpserver

import (
	"html/template"
	"net/http"

	mapstructure "github.com/go-viper/mapstructure/v2"
	hclog "github.com/hashicorp/go-hclog"
	"github.com/gorilla/mux"

	"github.com/corvidlogic/ltlequiv/pkg/driver"
)

// NewRouter builds the mux router serving the form endpoint and the
// liveness probe.
func NewRouter(logger hclog.Logger) *mux.Router {
	s := &server{logger: logger}
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleForm).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

type server struct {
	logger hclog.Logger
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>ltlequiv</title></head>
<body>
<h1>Transform a formula</h1>
<form method="POST" action="/">
  <label>Formula <input type="text" name="formula" value="{{.Formula}}"></label><br>
  <label>Operators <input type="text" name="operators" value="{{.Operators}}"></label><br>
  <label>Complexity <input type="text" name="complexity" value="{{.Complexity}}"></label><br>
  <label>Depth <input type="text" name="depth" value="{{.Depth}}"></label><br>
  <label>Show unfiltered <input type="text" name="show_unfiltered" value="{{.ShowUnfiltered}}"></label><br>
  <label>Timeout <input type="text" name="timeout" value="{{.Timeout}}"></label><br>
  <button type="submit">Transform</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}
{{if .Unfiltered}}
<h2>Unfiltered equivalents</h2>
<ul>{{range .Unfiltered}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .Filtered}}
<h2>Filtered equivalents</h2>
<ul>{{range .Filtered}}<li>{{.}}</li>{{end}}</ul>
{{else}}
<p>no equivalents</p>
{{end}}
</body>
</html>`))

type formView struct {
	Formula        string
	Operators      string
	Complexity     string
	Depth          string
	ShowUnfiltered string
	Timeout        string
	Error          string
	Warning        string
	Unfiltered     []string
	Filtered       []string
}

func (s *server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		formTemplate.Execute(w, formView{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}

	formulaText := r.FormValue("formula")
	var raw driver.RawFields
	decoderConfig := &mapstructure.DecoderConfig{Result: &raw, WeaklyTypedInput: true}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	formFields := map[string]interface{}{
		"operators":       r.FormValue("operators"),
		"complexity":      r.FormValue("complexity"),
		"depth":           r.FormValue("depth"),
		"show_unfiltered": r.FormValue("show_unfiltered"),
		"timeout":         r.FormValue("timeout"),
	}
	if err := decoder.Decode(formFields); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := formView{
		Formula:        formulaText,
		Operators:      raw.Operators,
		Complexity:     raw.Complexity,
		Depth:          raw.Depth,
		ShowUnfiltered: raw.ShowUnfiltered,
		Timeout:        raw.Timeout,
	}

	req, err := driver.DecodeRequest(formulaText, raw)
	if err != nil {
		view.Error = err.Error()
		formTemplate.Execute(w, view)
		return
	}

	result, err := driver.Run(r.Context(), s.logger, req)
	if err != nil {
		view.Error = err.Error()
		formTemplate.Execute(w, view)
		return
	}

	if len(result.Unreachable) > 0 {
		view.Warning = "alphabet cannot express every operator"
	}
	for _, f := range result.Unfiltered {
		view.Unfiltered = append(view.Unfiltered, f.String())
	}
	for _, f := range result.Filtered {
		view.Filtered = append(view.Filtered, f.String())
	}

	formTemplate.Execute(w, view)
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
