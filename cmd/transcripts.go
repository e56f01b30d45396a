package cmd

// TranscriptsCmd manages the archive of completed interviews
type TranscriptsCmd struct {
	Del  TranscriptsDelCmd  `cmd:"del" help:"Delete a transcript"`
	List TranscriptsListCmd `cmd:"list" help:"List archived transcripts"`
	View TranscriptsViewCmd `cmd:"view" help:"Show a transcript with all rounds"`
}
