package rtcinput

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
	"github.com/rs/zerolog"

	"github.com/frudas24/deskmouse/internal/control"
	"github.com/frudas24/deskmouse/internal/observability"
)

// PeerFactory builds peer connections whose input data channel drives a controller.
type PeerFactory struct {
	mu     sync.Mutex
	api    *webrtc.API
	config webrtc.Configuration
	ctrl   *control.Controller
	log    zerolog.Logger
	peer   *webrtc.PeerConnection
}

// NewPeerFactory initializes a pion API with default codecs/interceptors.
func NewPeerFactory(ctrl *control.Controller, iceServers []string, log zerolog.Logger) (*PeerFactory, error) {
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	cfg := webrtc.Configuration{}
	if len(iceServers) > 0 {
		cfg.ICEServers = []webrtc.ICEServer{{URLs: iceServers}}
	}
	return &PeerFactory{api: api, config: cfg, ctrl: ctrl, log: log}, nil
}

// NewPeer creates a new peer connection, replacing any previous one.
func (f *PeerFactory) NewPeer() (*webrtc.PeerConnection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.peer != nil {
		_ = f.peer.Close()
		f.peer = nil
	}

	peer, err := f.api.NewPeerConnection(f.config)
	if err != nil {
		return nil, err
	}
	peer.OnDataChannel(f.attachChannel)
	peer.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		f.log.Debug().Str("state", state.String()).Msg("peer connection state")
	})

	f.peer = peer
	return peer, nil
}

// ClosePeer closes the current peer connection.
func (f *PeerFactory) ClosePeer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.peer != nil {
		_ = f.peer.Close()
		f.peer = nil
	}
}

// attachChannel wires the input data channel to the controller.
func (f *PeerFactory) attachChannel(dc *webrtc.DataChannel) {
	if dc.Label() != InputLabel {
		f.log.Debug().Str("label", dc.Label()).Msg("ignoring data channel")
		return
	}
	var open atomic.Bool
	dc.OnOpen(func() {
		open.Store(true)
		observability.ConnectionOpened()
		f.log.Info().Msg("input channel open")
	})
	dc.OnClose(func() {
		if open.CompareAndSwap(true, false) {
			observability.ConnectionClosed()
		}
		if err := f.ctrl.ReleaseAll(); err != nil {
			f.log.Warn().Err(err).Msg("release held buttons")
		}
		f.log.Info().Msg("input channel closed")
	})
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		reply := HandleData(f.ctrl, msg.Data)
		if reply == nil {
			return
		}
		if err := dc.SendText(string(reply)); err != nil {
			f.log.Warn().Err(err).Msg("send input reply")
		}
	})
}
