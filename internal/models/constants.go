// Package models contains data types and constants for the Ask/PDF chat service.
package models

// Endpoint paths, relative to the configured base URL
const (
	EndpointAsk = "/ask"
	EndpointPDF = "/pdf"
)

// PDFFieldName is the multipart field carrying the uploaded document
const PDFFieldName = "pdf"

// Locale used by the speech capabilities
const SpeechLocale = "en-US"

// Literal texts rendered into the transcript
const (
	FallbackAnswer  = "No response"
	FallbackSummary = "No summary"

	NetworkErrorPrefix = "Network error: "
	PDFErrorPrefix     = "PDF error: "
	UploadNoticePrefix = "Uploaded PDF: "

	ListeningPlaceholder = "[Listening...]"
	VoiceErrorText       = "[Voice error]"
	StoppedListeningText = "[Stopped listening]"

	VoiceLabelIdle      = "🎤"
	VoiceLabelListening = "Listening..."
	VoiceUnsupportedTip = "Voice feature not supported in this environment."
)
