package web

import (
	"errors"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/katalvlaran/algoviz/algorithms"
)

type pageData struct {
	Name    string
	Index   int
	Len     int
	Frame   template.HTML
	Playing bool
	Delay   int // seconds, for the refresh header

	Prev, Next, Reset, Play, Pause, Menu string
	AtStart, AtEnd                       bool
}

// GET /algorithms/:name/steps/:index
func (h *Handler) page(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	name := params.ByName("name")
	rec, err := h.recordingFor(name)
	if errors.Is(err, algorithms.ErrUnknownStrategy) {
		h.logger.Warnf("unknown strategy %q, back to menu", name)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil {
		http.Error(w, "bad index: "+err.Error(), http.StatusBadRequest)
		return
	}
	n := rec.engine.Len()
	frame, err := rec.frame(index)
	if err != nil {
		http.Error(w, err.Error(), statusOf(err))
		return
	}

	d := pageData{
		Name:    name,
		Index:   index,
		Len:     n,
		Frame:   template.HTML(frame), // produced by canvas.SVG, already escaped
		AtStart: index == 0,
		AtEnd:   index == n-1,
		Menu:    "/",
		Reset:   stepURL(name, 0, false),
		Prev:    stepURL(name, max(index-1, 0), false),
		Next:    stepURL(name, min(index+1, n-1), false),
		Pause:   stepURL(name, index, false),
		Delay:   int(math.Max(1, math.Round(h.delay.Seconds()))),
	}
	// Play from the end restarts; playing stops on the last step.
	if d.AtEnd {
		d.Play = stepURL(name, 0, true)
	} else {
		d.Play = stepURL(name, index, true)
	}
	if r.URL.Query().Get("play") == "1" && !d.AtEnd {
		d.Playing = true
		w.Header().Set("Refresh", strconv.Itoa(d.Delay)+"; url="+stepURL(name, index+1, true))
	}
	h.responseHTML(w, r, http.StatusOK, pageTemplate, d)
}

func stepURL(name string, index int, play bool) string {
	u := urlAlgorithms + "/" + url.PathEscape(name) + "/steps/" + strconv.Itoa(index)
	if play {
		u += "?play=1"
	}

	return u
}

var menuTemplate = template.Must(template.New("menu").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Algorithm visualizer</title></head>
<body style="font-family: sans-serif">
<h1>Choose an algorithm</h1>
<p>Start vertex: {{.Start}}</p>
<ol>
{{- range .Names}}
<li><a href="/algorithms/{{.}}/steps/0">{{.}}</a></li>
{{- end}}
</ol>
</body>
</html>
`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Name}} · step {{.Index}}</title></head>
<body style="font-family: sans-serif">
<h1>{{.Name}}</h1>
<nav>
<a href="{{.Menu}}">Back</a>
{{- if .AtStart}} Prev{{else}} <a href="{{.Prev}}">Prev</a>{{end}}
{{- if .AtEnd}} Next{{else}} <a href="{{.Next}}">Next</a>{{end}}
{{- if .Playing}} <a href="{{.Pause}}">Pause</a>{{else}} <a href="{{.Play}}">Play</a>{{end}}
<a href="{{.Reset}}">Stop</a>
</nav>
<div>{{.Frame}}</div>
</body>
</html>
`))
