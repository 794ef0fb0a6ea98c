// Package markup converts between Markdown and HTML with an ordered list of
// pattern substitutions.
//
// This is not a Markdown parser. Each rule is applied once over the whole
// text, in order, so nested or overlapping markup (bold inside a link, a
// '*' inside a code block) is not handled. HTML produced by MarkdownToHTML
// converts back to equivalent Markdown through HTMLToMarkdown for headers,
// emphasis, code, links, images, lists, tables, blockquotes and rules.
package markup

import (
	"html"
	"regexp"
	"strings"
)

// rule is a single regex substitution. If fn is set it takes precedence over repl.
type rule struct {
	re   *regexp.Regexp
	repl string
	fn   func(string) string
}

func (r rule) apply(s string) string {
	if r.fn != nil {
		return r.re.ReplaceAllStringFunc(s, r.fn)
	}
	return r.re.ReplaceAllString(s, r.repl)
}

var (
	tableSeparatorRe = regexp.MustCompile(`(?m)^[ \t]*\|(?:[ \t]*:?-+:?[ \t]*\|)+[ \t]*(?:\n|$)`)
	tableRowRe       = regexp.MustCompile(`(?m)^[ \t]*\|(.+)\|[ \t]*$`)
	linkOrImageRe    = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+)\)`)
)

var markdownRules = []rule{
	{re: regexp.MustCompile(`(?m)^### (.*)$`), repl: "<h3>$1</h3>"},
	{re: regexp.MustCompile(`(?m)^## (.*)$`), repl: "<h2>$1</h2>"},
	{re: regexp.MustCompile(`(?m)^# (.*)$`), repl: "<h1>$1</h1>"},
	{re: regexp.MustCompile(`\*\*(.*?)\*\*`), repl: "<strong>$1</strong>"},
	{re: regexp.MustCompile(`\*(.*?)\*`), repl: "<em>$1</em>"},
	{re: regexp.MustCompile("```(\\w+)?\\n((?s:.*?))```"), repl: `<pre><code class="language-$1">$2</code></pre>`},
	{re: regexp.MustCompile("`([^`]+)`"), repl: "<code>$1</code>"},
	{re: linkOrImageRe, fn: linkOrImage},
	{re: regexp.MustCompile(`(?m)^- (.+)$`), repl: "<li>$1</li>"},
	{re: regexp.MustCompile(`(?m)^<li>.*</li>(?:\n<li>.*</li>)*`), repl: "<ul>$0</ul>"},
	{re: tableSeparatorRe, repl: ""},
	{re: tableRowRe, fn: tableRow},
	{re: regexp.MustCompile(`(?m)^<tr>.*</tr>(?:\n<tr>.*</tr>)*`), repl: "<table>$0</table>"},
	{re: regexp.MustCompile(`(?m)^> (.+)$`), repl: "<blockquote>$1</blockquote>"},
	{re: regexp.MustCompile(`(?m)^---$`), repl: "<hr>"},
	{re: regexp.MustCompile(`\n`), repl: "<br>"},
	{re: regexp.MustCompile(`(?:<br>){3,}`), repl: "<br><br>"},
}

var htmlRules = []rule{
	{re: regexp.MustCompile(`<h1>(.*?)</h1>`), repl: "# $1"},
	{re: regexp.MustCompile(`<h2>(.*?)</h2>`), repl: "## $1"},
	{re: regexp.MustCompile(`<h3>(.*?)</h3>`), repl: "### $1"},
	{re: regexp.MustCompile(`<strong>(.*?)</strong>`), repl: "**$1**"},
	{re: regexp.MustCompile(`<em>(.*?)</em>`), repl: "*$1*"},
	{re: regexp.MustCompile(`(?s)<pre><code[^>]*>(.*?)</code></pre>`), repl: "```\n$1\n```"},
	{re: regexp.MustCompile(`<code>(.*?)</code>`), repl: "`$1`"},
	{re: regexp.MustCompile(`<a href="([^"]+)"[^>]*>(.*?)</a>`), repl: "[$2]($1)"},
	{re: regexp.MustCompile(`<img src="([^"]+)" alt="([^"]*)"[^>]*>`), repl: "![$2]($1)"},
	{re: regexp.MustCompile(`<li>(.*?)</li>`), repl: "- $1"},
	{re: regexp.MustCompile(`</?ul>`), repl: ""},
	{re: regexp.MustCompile(`<tr>(.*?)</tr>`), fn: tableRowToMarkdown},
	{re: regexp.MustCompile(`</?table>`), repl: ""},
	{re: regexp.MustCompile(`<blockquote>(.*?)</blockquote>`), repl: "> $1"},
	{re: regexp.MustCompile(`<hr\s*/?>`), repl: "---"},
	{re: regexp.MustCompile(`<br\s*/?>`), repl: "\n"},
	{re: regexp.MustCompile(`<[^>]+>`), repl: ""},
}

var tableCellRe = regexp.MustCompile(`<t[dh][^>]*>(.*?)</t[dh]>`)

// MarkdownToHTML converts Markdown to an HTML fragment. Line breaks become
// <br> and runs of three or more collapse to two.
func MarkdownToHTML(text string) string {
	out := strings.ReplaceAll(text, "\r\n", "\n")
	for _, r := range markdownRules {
		out = r.apply(out)
	}
	return out
}

// HTMLToMarkdown converts an HTML fragment to Markdown. Tags without a
// Markdown equivalent are stripped and character entities are decoded.
func HTMLToMarkdown(text string) string {
	out := text
	for _, r := range htmlRules {
		out = r.apply(out)
	}
	return html.UnescapeString(out)
}

// linkOrImage renders [t](u) as a link and ![a](u) as an image. A link
// needs non-empty text; an image may have an empty alt.
func linkOrImage(match string) string {
	m := linkOrImageRe.FindStringSubmatch(match)
	bang, label, url := m[1], m[2], m[3]
	if bang == "!" {
		return `<img src="` + url + `" alt="` + label + `"/>`
	}
	if label == "" {
		return match
	}
	return `<a href="` + url + `">` + label + `</a>`
}

func tableRow(match string) string {
	m := tableRowRe.FindStringSubmatch(match)
	var b strings.Builder
	b.WriteString("<tr>")
	for _, cell := range strings.Split(m[1], "|") {
		b.WriteString("<td>")
		b.WriteString(strings.TrimSpace(cell))
		b.WriteString("</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func tableRowToMarkdown(match string) string {
	cells := tableCellRe.FindAllStringSubmatch(match, -1)
	if len(cells) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c[1])
		b.WriteString(" |")
	}
	return b.String()
}
