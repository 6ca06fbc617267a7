package hrefs

import (
	"net/url"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/searchquery"
)

const (
	Home       = "/"
	Contact    = "mailto:gordom6@rpi.edu"
	GitHub     = "https://github.com/tetherless-world/mcs-portal"
	kgs        = "/kg/"
	benchmarks = "/benchmark/"
)

// ID is an entity identifier. Encoded marks identifiers that are already path-escaped.
type ID struct {
	Value   string
	Encoded bool
}

func (id ID) segment() string {
	if id.Encoded {
		return id.Value
	}
	return url.PathEscape(id.Value)
}

func Raw(value string) ID {
	return ID{Value: value}
}

func Kgs() string {
	return kgs
}

type KgHrefs struct {
	prefix string
}

func Kg(id ID) KgHrefs {
	return KgHrefs{prefix: kgs + id.segment() + "/"}
}

func (k KgHrefs) Home() string {
	return k.prefix
}

func (k KgHrefs) Node(id ID) string {
	return k.prefix + "node/" + id.segment()
}

// NodeList is the list tab of the node page; the grid tab is the node page itself.
func (k KgHrefs) NodeList(id ID) string {
	return k.Node(id) + "/list"
}

// NodeSearch returns the search results href. A nil window yields the bare search page.
func (k KgHrefs) NodeSearch(window *searchquery.Window) string {
	base := k.prefix + "node/search"
	if window == nil {
		return base
	}
	return base + "?" + window.Values().Encode()
}

func (k KgHrefs) RandomNode() string {
	return k.prefix + "randomNode"
}

func (k KgHrefs) Source(id ID) string {
	return k.prefix + "source/" + id.segment()
}

func Benchmarks() string {
	return benchmarks
}

type BenchmarkHrefs struct {
	prefix string
}

func Benchmark(id ID) BenchmarkHrefs {
	return BenchmarkHrefs{prefix: benchmarks + id.segment() + "/"}
}

func (b BenchmarkHrefs) Home() string {
	return b.prefix
}

func (b BenchmarkHrefs) Dataset(id ID) DatasetHrefs {
	return DatasetHrefs{prefix: b.prefix + "dataset/" + id.segment() + "/"}
}

type DatasetHrefs struct {
	prefix string
}

func (d DatasetHrefs) Home() string {
	return d.prefix
}

func (d DatasetHrefs) Submission(id ID) SubmissionHrefs {
	return SubmissionHrefs{prefix: d.prefix + "submission/" + id.segment() + "/"}
}

type SubmissionHrefs struct {
	prefix string
}

func (s SubmissionHrefs) Home() string {
	return s.prefix
}

func (s SubmissionHrefs) Question(id ID) string {
	return s.prefix + "question/" + id.segment()
}
