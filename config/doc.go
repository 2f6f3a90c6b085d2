/*
Package config loads the settings shared by conkit applications.

Settings start from [Default], may be read from a TOML or YAML file with [Load], and can then be overridden from the environment with [Config.ApplyEnv].
[Config.Validate] reports every problem at once, rather than stopping at the first.

A TOML file looks like this.

	[help]
	enabled = true
	flags = ["--help", "-h", "-?"]
	app_name = "tool"

	[form]
	confirm = false

	[form.texts]
	required = "Please answer this one."

	[log]
	level = "debug"
	file = "tool.log"

	[color]
	enabled = false
*/
package config
