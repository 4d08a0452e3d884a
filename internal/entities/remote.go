package entities

const BluetoothRemoteID = "bluetooth_remote"

// ButtonAction is what a remote button does to the counter.
type ButtonAction string

const (
	ActionIncrement ButtonAction = "increment"
	ActionDecrement ButtonAction = "decrement"
	ActionReset     ButtonAction = "reset"
	ActionNone      ButtonAction = "none"
)

func (a ButtonAction) Valid() bool {
	switch a {
	case ActionIncrement, ActionDecrement, ActionReset, ActionNone:
		return true
	}
	return false
}

// BluetoothRemote maps the four buttons of a paired remote to counter actions.
// Pairing happens on the client; the device fields are opaque here.
type BluetoothRemote struct {
	ID            string       `gorm:"column:id;primaryKey;size:64" json:"id" bson:"id"`
	DeviceName    *string      `gorm:"column:device_name;size:256" json:"device_name" bson:"device_name"`
	DeviceID      *string      `gorm:"column:device_id;size:256" json:"device_id" bson:"device_id"`
	ButtonAAction ButtonAction `gorm:"column:button_a_action;size:20" json:"button_a_action" bson:"button_a_action"`
	ButtonBAction ButtonAction `gorm:"column:button_b_action;size:20" json:"button_b_action" bson:"button_b_action"`
	ButtonCAction ButtonAction `gorm:"column:button_c_action;size:20" json:"button_c_action" bson:"button_c_action"`
	ButtonDAction ButtonAction `gorm:"column:button_d_action;size:20" json:"button_d_action" bson:"button_d_action"`
	IsPaired      bool         `gorm:"column:is_paired" json:"is_paired" bson:"is_paired"`
}

func (BluetoothRemote) TableName() string {
	return "bluetooth_remote"
}

func DefaultBluetoothRemote() *BluetoothRemote {
	return &BluetoothRemote{
		ID:            BluetoothRemoteID,
		ButtonAAction: ActionIncrement,
		ButtonBAction: ActionDecrement,
		ButtonCAction: ActionReset,
		ButtonDAction: ActionNone,
	}
}

type BluetoothRemoteUpdate struct {
	DeviceName    *string       `json:"device_name"`
	DeviceID      *string       `json:"device_id"`
	ButtonAAction *ButtonAction `json:"button_a_action" binding:"omitempty,oneof=increment decrement reset none"`
	ButtonBAction *ButtonAction `json:"button_b_action" binding:"omitempty,oneof=increment decrement reset none"`
	ButtonCAction *ButtonAction `json:"button_c_action" binding:"omitempty,oneof=increment decrement reset none"`
	ButtonDAction *ButtonAction `json:"button_d_action" binding:"omitempty,oneof=increment decrement reset none"`
	IsPaired      *bool         `json:"is_paired"`
}

func (u BluetoothRemoteUpdate) Fields() Fields {
	f := Fields{}
	put(f, "device_name", u.DeviceName)
	put(f, "device_id", u.DeviceID)
	put(f, "button_a_action", u.ButtonAAction)
	put(f, "button_b_action", u.ButtonBAction)
	put(f, "button_c_action", u.ButtonCAction)
	put(f, "button_d_action", u.ButtonDAction)
	put(f, "is_paired", u.IsPaired)
	return f
}
