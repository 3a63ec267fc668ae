package robot

// ButtonBinder is implemented by roots that bind operator inputs to commands.
type ButtonBinder interface {
	ConfigureButtonBindings()
}

// DashboardPopulator is implemented by roots that publish data or commands
// to an operator dashboard.
type DashboardPopulator interface {
	PopulateDashboard()
}

// DefaultCommandSetter is implemented by roots that assign default commands
// to their subsystems.
type DefaultCommandSetter interface {
	SetDefaultCommands()
}

func runInitHooks(root any) []string {
	var ran []string
	if h, ok := root.(ButtonBinder); ok {
		h.ConfigureButtonBindings()
		ran = append(ran, "button_bindings")
	}
	if h, ok := root.(DashboardPopulator); ok {
		h.PopulateDashboard()
		ran = append(ran, "dashboard")
	}
	if h, ok := root.(DefaultCommandSetter); ok {
		h.SetDefaultCommands()
		ran = append(ran, "default_commands")
	}
	return ran
}
