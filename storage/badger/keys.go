package badger

import (
	"fmt"

	"github.com/jotline/jotline/core"
)

// Key prefixes for different data types
const (
	noteRecordPrefix = "notrec"
)

// makeNoteKey generates a key for a note, scoped to its owner.
// Format: prefix:userId:noteId
func makeNoteKey(userId string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", noteRecordPrefix, userId, id))
}

// makeUserNotesPrefix generates the key prefix covering all of a
// user's notes, for prefix iteration.
func makeUserNotesPrefix(userId string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", noteRecordPrefix, userId))
}
