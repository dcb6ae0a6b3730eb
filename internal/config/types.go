package config

type Interpreter struct {
	Command string   `hcl:"command"`
	Args    []string `hcl:"args"`
	Env     []string `hcl:"env"`
}

type Ignition struct {
	Interpreter *Interpreter `hcl:"interpreter"`
}
