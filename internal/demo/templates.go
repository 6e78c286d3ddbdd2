package demo

// pageTemplate is the Go html/template for each sample page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} ({{.Language}}/{{.Version}})</title>
  <style>
    body { max-width: 720px; margin: 2rem auto; padding: 0 1rem;
           font-family: -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6; }
    pre { background: #f6f8fa; padding: 12px; border-radius: 6px; overflow-x: auto; }
  </style>
</head>
<body>
  <article>
    {{.Content}}
  </article>
</body>
</html>`

// samplePages maps page names to markdown sources. Each source embeds
// the page's language and version so it is obvious which tree the
// flyout navigated to.
var samplePages = map[string]string{
	"index": `# Sample Documentation

You are reading the **%s** edition, version **%s**.

Use the flyout in the bottom-right corner to switch language or version.

- [Guide](guide.html)
`,
	"guide": `# Guide

This page exists in every language/version combination (%s/%s), so every
switch from here resolves without falling back.

## Example

` + "```go\nfunc main() {\n\tfmt.Println(\"hello\")\n}\n```" + `
`,
}
