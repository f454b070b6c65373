//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New returns a Notifier backed by the session bus, or a no-op one when
// D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // degrade to no-op without D-Bus
	}

	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusNotifier{conn: conn, obj: obj}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant("lectern"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout)
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"Lectern",
		uint32(0),
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)

	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}
