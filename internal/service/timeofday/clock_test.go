package timeofday

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/touch-alarm/internal/display"
)

type fixedRTC uint32

func (r fixedRTC) Seconds() uint32 { return uint32(r) }

// TestSplit wraps hours at midnight.
func TestSplit(t *testing.T) {
	t.Parallel()

	h, m, s := Split(0)
	require.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{h, m, s})

	h, m, s = Split(3*3600 + 7*60 + 9)
	require.Equal(t, [3]uint32{3, 7, 9}, [3]uint32{h, m, s})

	h, m, s = Split(25*3600 + 59*60 + 59)
	require.Equal(t, [3]uint32{1, 59, 59}, [3]uint32{h, m, s})
}

// TestTask_DrawsAtColumnNine keeps the status text in the first columns.
func TestTask_DrawsAtColumnNine(t *testing.T) {
	t.Parallel()

	lcd := display.NewCharLCD()
	lcd.WriteString("ARMED")

	c, err := New(fixedRTC(13*3600+4*60+5), lcd)
	require.NoError(t, err)

	c.Task(context.Background())

	require.Equal(t, "ARMED   13:04:05", lcd.Lines()[0])
}

// TestNew_RequiresCollaborators rejects nil dependencies.
func TestNew_RequiresCollaborators(t *testing.T) {
	t.Parallel()

	_, err := New(nil, display.NewCharLCD())
	require.ErrorIs(t, err, errMissingCollaborator)
}
