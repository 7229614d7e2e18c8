package constants

// sonorities outside this range are not worth naming
const MinChordSize = 2
const MaxChordSize = 16

// one quarter note at sample.TicksPerQuarter
const DefaultTicksPerChord = 960

const RequestIDHeader = "X-Request-Id"
