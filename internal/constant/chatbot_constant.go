package constant

const (
	// PromptInstruction precedes the combined document text in every request.
	PromptInstruction = "Use the following content to answer the question."
	PromptQuestionTag = "Question:"

	ChatNamePrefix = "Chat "

	AnswerErrorPrefix = "Error calling API: "
)

const (
	NoticeTextExtracted    = "✅ Text extracted!"
	NoticeNoTextExtracted  = "⚠️ No text extracted."
	NoticeNameTaken        = "That name already exists."
	NoticeUploadHint       = "Upload files in the sidebar and click Submit to extract text before chatting."
	NoticeGeneratingAnswer = "🧠 Generating your answer..."
)

const (
	NoticeLevelSuccess = "success"
	NoticeLevelWarning = "warning"
	NoticeLevelError   = "error"
	NoticeLevelInfo    = "info"
)
