package buildinfo

const Graffiti = "  __ _  ___  ___| |_ _   _ _ __ ___ \n / _` |/ _ \\/ __| __| | | | '__/ _ \\\n| (_| |  __/\\__ \\ |_| |_| | | |  __/\n \\__, |\\___||___/\\__|\\__,_|_|  \\___|\n |___/\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "GESTURE"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
