// internal/writer/modbus/client.go
package modbus

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/goburrow/modbus"
	"github.com/pkg/errors"
)

// Config locates a register window on a Modbus TCP unit.
type Config struct {
	Endpoint string
	UnitID   uint8
	Start    uint16 // first holding register of the window
	Size     uint16
	Timeout  time.Duration
}

// Block is a connected window of holding registers. Writes are addressed
// relative to Start and may not leave the window.
type Block struct {
	mu    sync.Mutex
	conn  *modbus.TCPClientHandler
	regs  modbus.Client
	start uint16
	size  uint16
}

// Open checks the window and connects to its endpoint.
func Open(cfg Config) (*Block, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus block: endpoint required")
	}
	if cfg.Size == 0 {
		return nil, errors.New("modbus block: size must be > 0")
	}
	if end := uint32(cfg.Start) + uint32(cfg.Size); end > 1<<16 {
		return nil, errors.Errorf("modbus block: window %d+%d exceeds register space", cfg.Start, cfg.Size)
	}

	conn := modbus.NewTCPClientHandler(cfg.Endpoint)
	conn.Timeout = cfg.Timeout
	conn.SlaveId = cfg.UnitID

	if err := conn.Connect(); err != nil {
		return nil, errors.Wrapf(err, "modbus block: connect %s", cfg.Endpoint)
	}

	return &Block{
		conn:  conn,
		regs:  modbus.NewClient(conn),
		start: cfg.Start,
		size:  cfg.Size,
	}, nil
}

// Write stores values at offset with one FC16 request.
func (b *Block) Write(offset uint16, values ...uint16) error {
	if len(values) == 0 {
		return nil
	}
	if uint32(offset)+uint32(len(values)) > uint32(b.size) {
		return errors.Errorf("modbus block: write %d+%d outside window of %d", offset, len(values), b.size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	addr := b.start + offset
	if _, err := b.regs.WriteMultipleRegisters(addr, uint16(len(values)), encode(values)); err != nil {
		return errors.Wrapf(err, "modbus block: write register %d", addr)
	}
	return nil
}

// Close drops the connection.
func (b *Block) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.Close()
}

// encode lays registers out big-endian, as FC16 carries them.
func encode(values []uint16) []byte {
	out := make([]byte, 2*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint16(out[2*i:], v)
	}
	return out
}
