package protocol

// Marker layout mirrors the wire protocol table:
// 1..99 stream handling, 100..149 logic requests, 150..199 logic notices.
const (
	markerHandshake       byte = 1
	markerAcknowledge     byte = 2
	markerInvalid         byte = 3
	markerTerminate       byte = 4
	markerShipPositions   byte = 100
	markerTarget          byte = 101
	markerInformSelection byte = 150
	markerInformHit       byte = 151
	markerInformMiss      byte = 152
	markerVictory         byte = 153
	markerLoss            byte = 154
)

// Literal bodies for the fixed-payload messages.
var (
	bodyHandshake     = []byte("HELO")
	bodyAcknowledge   = []byte("ACK")
	bodyInvalid       = []byte("INVALID")
	bodyTerminate     = []byte("TERM")
	bodyRequestShips  = []byte("REQ SHIPP")
	bodyRequestTarget = []byte("TARG")
	bodyInformSelect  = []byte("INFO TARG")
	bodyVictory       = []byte("VICTORY")
	bodyLoss          = []byte("LOSS")
)

// Handshake opens a connection; sent by both sides, each direction
// expecting one from the other.
type Handshake struct{}

// Acknowledge is the client's reply to server notices.
type Acknowledge struct{}

// Invalid tells the client its last message did not fit the exchange.
type Invalid struct{}

// TerminateConnection is the server's final message on a connection.
type TerminateConnection struct{}

func (Handshake) clientMessage()           {}
func (Handshake) serverMessage()           {}
func (Acknowledge) clientMessage()         {}
func (Invalid) serverMessage()             {}
func (TerminateConnection) serverMessage() {}
