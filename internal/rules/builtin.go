package rules

import "github.com/cyberempirex/installguard/internal/types"

var builtinRules = []Rule{
	// HIGH
	{ID: "rm_rf_root", Tier: types.TierHigh, Description: "Recursive delete of the root filesystem",
		Pattern: `\brm\s+(-\S+\s+)*-[a-z]*r[a-z]*\s+(-\S+\s+)*["']?/\*?["']?(\s|;|&|$)`},
	{ID: "chmod_777", Tier: types.TierHigh, Description: "World-writable permission change",
		Pattern: `\bchmod\s+(-r\s+)?0?777\s+\S`},
	{ID: "block_device_redirect", Tier: types.TierHigh, Description: "Output redirected onto a block device",
		Pattern: `>\s*/dev/(sd[a-z]|hd[a-z]|vd[a-z]|nvme\d|mmcblk\d)`},
	{ID: "dd_device_write", Tier: types.TierHigh, Description: "Raw write to a device with dd",
		Pattern: `\bdd\s+.*\bof=/dev/`},
	{ID: "dd_device_read", Tier: types.TierHigh, Description: "Raw read of a block device with dd",
		Pattern: `\bdd\s+.*\bif=/dev/(sd[a-z]|hd[a-z]|vd[a-z]|nvme\d|mmcblk\d)`},
	{ID: "mkfs_device", Tier: types.TierHigh, Description: "Filesystem format of a device",
		Pattern: `\bmkfs(\.\w+)?\s+.*/dev/`},
	{ID: "fork_bomb", Tier: types.TierHigh, Description: "Shell fork bomb",
		Pattern: `:\s*\(\s*\)\s*\{.*:\s*\|\s*:\s*&.*\}\s*;\s*:`},
	{ID: "download_pipe_bash", Tier: types.TierHigh, Description: "Remote download piped into bash",
		Pattern: `\b(curl|wget)\b.*\|\s*(sudo\s+(-\S+\s+)*)?bash\b`},

	// MEDIUM
	{ID: "rm_rf_home", Tier: types.TierMedium, Description: "Recursive delete of the home directory",
		Pattern: `\brm\s+(-\S+\s+)*-[a-z]*r[a-z]*\s+(-\S+\s+)*["']?(~|\$home|\$\{home\})["']?(/\S*)?(\s|;|&|$)`},
	{ID: "chmod_777_home", Tier: types.TierMedium, Description: "World-writable permissions on home",
		Pattern: `\bchmod\s+(-r\s+)?0?777\s+["']?(~|\$home|\$\{home\})`},
	{ID: "download_pipe_sh", Tier: types.TierMedium, Description: "Remote download piped into sh",
		Pattern: `\b(curl|wget)\b.*\|\s*(sudo\s+(-\S+\s+)*)?sh\b`},
	{ID: "sudo", Tier: types.TierMedium, Description: "Privilege elevation with sudo",
		Pattern: `\bsudo\s+\S`},
	{ID: "su_command", Tier: types.TierMedium, Description: "Command run as another user with su -c",
		Pattern: `\bsu\s+(\S+\s+)*-c\b`},
	{ID: "chown_recursive", Tier: types.TierMedium, Description: "Recursive ownership change",
		Pattern: `\bchown\s+-r\s+\S`},
	{ID: "etc_redirect", Tier: types.TierMedium, Description: "Output written into /etc",
		Pattern: `>>?\s*/etc/`},
	{ID: "etc_tee", Tier: types.TierMedium, Description: "tee into /etc",
		Pattern: `\btee\s+(-a\s+)?/etc/`},

	// LOW
	{ID: "apt_remove", Tier: types.TierLow, Description: "System package removal",
		Pattern: `\bapt(-get)?\s+(-\S+\s+)*(remove|purge|autoremove)\b`},
	{ID: "pkg_remove", Tier: types.TierLow, Description: "Termux package removal",
		Pattern: `\bpkg\s+(remove|uninstall)\b`},
	{ID: "pip_uninstall", Tier: types.TierLow, Description: "Python package removal",
		Pattern: `\bpip3?\s+uninstall\b`},
	{ID: "shell_profile_append", Tier: types.TierLow, Description: "Append to a shell startup file",
		Pattern: `>>\s*(~|\$home)/\.(bashrc|zshrc|profile|bash_profile)\b`},
}

var builtinKeywords = []string{
	"backdoor", "reverse_shell", "keylogger", "miner",
	"cryptominer", "malware", "trojan", "exploit",
	"payload", "meterpreter", "rat", "botnet",
}

var defaultSet = mustBuild()

func mustBuild() *RuleSet {
	rs, err := New(builtinRules, builtinKeywords)
	if err != nil {
		panic(err)
	}
	return rs
}

// Default returns the compiled-in rule set. It is shared and read-only.
func Default() *RuleSet { return defaultSet }
