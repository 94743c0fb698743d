package llmstxt

// NoRelevantLinksMessage is returned when a manifest was found but the
// ranker selected no links for the query.
const NoRelevantLinksMessage = "No relevant documentation found in llms.txt."

// FormatSection formats one fetched documentation link as a markdown block:
// a heading with the link's title, its description, the fetched body, and a
// separator.
func FormatSection(link DocLink, content string) string {
	return "# " + link.Title + "\n" + link.Description + "\n\n" + content + "\n---\n"
}

// FormatFetchFailure is the placeholder block emitted when a link's content
// could not be fetched.
func FormatFetchFailure(url string) string {
	return "Could not fetch content from " + url + "\n---\n"
}

// FormatRelevantInfo wraps query-relevant excerpts extracted directly from
// cleaned page content.
func FormatRelevantInfo(url, excerpt string) string {
	return "# Relevant information from " + url + "\n\n" + excerpt
}

// NotFoundMessage is the terminal failure message, naming the URL that
// produced no documentation through any stage.
func NotFoundMessage(url string) string {
	return "Could not find llms.txt or extract documentation from " + url + "."
}
