// Package report renders the results of a run.
//
// A run produces seven named reports (see Names). Each can be written in
// three formats:
//   - TextWriter: wiki markup and plain lists, the format wiki editors paste
//     back into the site
//   - MarkdownWriter: Markdown for reading in a browser or on a forge
//   - JSONWriter: structured JSON for other tools
//
// DirSink writes every report of a run to a directory, one file per report.
//
// Writers implement the Writer interface, so they can be used
// interchangeably.
package report
