package meetingsummarizer

var Version = "v0.0.1"
