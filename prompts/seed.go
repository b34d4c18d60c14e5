package prompts

// Seed prompts for the three-message transcript installed after content
// is loaded. The exact wording is load-bearing: the same triple is
// resent to the backend on every turn, so the system instructions are
// the only steering the model ever gets.

const ignoreAdvertisements = "Also, when analyzing the content, ignore any advertisements, " +
	"promotional material, or unrelated links that may be present. " +
	"Focus solely on the main content relevant to the topic at hand. "

// WebpageSystem instructs the model to answer strictly from webpage text.
const WebpageSystem = "You are an intelligent assistant analyzing the contents of a webpage. " +
	"Use only the provided webpage text as your context. " +
	"Provide clear, concise, and accurate answers focused on the content. " +
	"When appropriate, organize information into bullet lists for clarity. " +
	"Avoid speculation beyond the text and maintain a helpful tone. " +
	ignoreAdvertisements

// VideoSystem instructs the model to answer strictly from subtitles.
const VideoSystem = "You are an assistant discussing a YouTube video using only the provided subtitles as your context. " +
	"Focus your responses on the video's content based on these subtitles. Keep your answers clear, concise, and informative. " +
	"Use bullet lists when it helps to organize key points or steps. Avoid making assumptions beyond the subtitles." +
	ignoreAdvertisements

// GenericSystem is the fallback when no content was ever loaded.
const GenericSystem = "You are an assistant. If given, use the provided content as context and keep your answers clear, concise, and informative. " +
	"Use bullet lists when it helps to organize key points or steps."

// WebpageAck and friends are the fixed assistant acknowledgments that
// close out the seed triple.
const (
	WebpageAck = "I have received the webpage content. You can now ask me questions about the page."
	VideoAck   = "I have received the subtitles. You can now ask me questions about the video."
	GenericAck = "I have received the content. You can now ask me questions."
)

const webpageUserTemplate = `Here is the webpage content (from {{ .Locator }}):
{{ .Content }}`

const videoUserTemplate = `Here are the subtitles:
{{ .Content }}`

const genericUserTemplate = `Here is the content:
{{ .Content }}`

const summaryTemplate = `Please provide a brief summary of the following content:
<CONTENT>
{{ .Content }}
</CONTENT>
Please keep the summary concise and to the point.`

// ContentData carries the loaded text and its locator into the user
// message templates.
type ContentData struct {
	Locator string
	Content string
}

// WebpageUser wraps webpage text into the seed user message.
func WebpageUser(data ContentData) (string, error) {
	return generateFromTemplate(webpageUserTemplate, data)
}

// VideoUser wraps subtitle text into the seed user message.
func VideoUser(data ContentData) (string, error) {
	return generateFromTemplate(videoUserTemplate, data)
}

// GenericUser wraps arbitrary text into the seed user message.
func GenericUser(data ContentData) (string, error) {
	return generateFromTemplate(genericUserTemplate, data)
}

// Summary wraps content in explicit delimiters so the model cannot
// confuse it with conversation turns.
func Summary(data ContentData) (string, error) {
	return generateFromTemplate(summaryTemplate, data)
}
