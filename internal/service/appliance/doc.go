// Package appliance wires the alarm appliance together and runs it.
//
// Run loads the settings, makes sure no other instance is running, powers up
// the simulated board, calibrates the pads, shows the boot checksum and then
// drives the task list from the scheduler, either headless or under the
// terminal front panel.
package appliance
