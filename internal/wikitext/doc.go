// Package wikitext holds the MediaWiki markup patterns fancyindex recognizes
// and the wiki table parser.
//
// Each pattern sits behind a named function with a single job, so the
// regular expressions never leak into the packages that digest pages or
// read convention tables. The recognized dialect is:
//
//	[[target]]  [[target|text]]  {{DISPLAYTITLE:...}}  [[Category:...]]
//	#REDIRECT [[target]]  [[html]]...[[/html]]  {| ... |}  <s>...</s>
//	&nbsp;  &#8209;
package wikitext
