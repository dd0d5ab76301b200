package history

import "time"

// Chrome records visit times as microseconds since 1601-01-01 UTC (the
// Windows FILETIME epoch), not the Unix epoch. Both the cutoff bound sent
// to the store and every timestamp read back must go through these two
// functions; mixing epochs silently corrupts every downstream comparison.
var chromeEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// unixEpochOffsetSeconds is the span between the two epochs: 1601-01-01
// to 1970-01-01.
const unixEpochOffsetSeconds = 11644473600

// toChromeTime converts calendar time to Chrome's native representation.
// The 1601 epoch puts modern instants ~425 years out, past what a
// nanosecond time.Duration can hold, so the conversion stays in integer
// seconds and microseconds throughout.
func toChromeTime(t time.Time) int64 {
	return (t.Unix()+unixEpochOffsetSeconds)*1_000_000 + int64(t.Nanosecond()/1000)
}

// fromChromeTime decodes a store-native timestamp to calendar time (UTC).
func fromChromeTime(us int64) time.Time {
	return time.Unix(us/1_000_000-unixEpochOffsetSeconds, (us%1_000_000)*1000).UTC()
}
