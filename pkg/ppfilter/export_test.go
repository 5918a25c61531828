package ppfilter

func (f *CmdFlag) Ignorer() func(string) bool { return f.ignorer() }

var (
	WriteDetail  = writeDetail
	WriteSummary = writeSummary
	WriteProfile = writeProfile
)
