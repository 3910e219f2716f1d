package basic

// Tags specific to individual built-in checks.
const (
	tagOS          = "os"
	tagISCSI       = "iscsi"
	tagUdev        = "udev"
	tagARP         = "arp"
	tagIRQ         = "irq"
	tagCPUFreq     = "cpufreq"
	tagBlockDevice = "block_device"
	tagMultipath   = "multipath"
	tagSetup       = "setup"
)

// Fault codes reported by the built-in checks.
const (
	CodeUnsupportedOS = "3C47368"

	CodeISCSIAdmMissing = "EFBB085C"

	CodeUdevRulesMissing    = "1C8F2E07"
	CodeSerialScriptMissing = "6D03F50B"

	CodeARPAnnounce = "9000C3B6"
	CodeARPIgnore   = "BDB4D5D8"

	CodeIRQBalanceActive = "B19D9FF1"

	CodeCPUPowerMissing       = "20CEE732"
	CodePerformanceGovernorNA = "333FBD45"

	CodeGrubMissing        = "6F7B6A25"
	CodeGrubCmdlineMissing = "A65B6D97"
	CodeSchedulerNotNoop   = "47BB5083"

	CodeMultipathMissing    = "2D18685C"
	CodeMultipathdNotActive = "541C10BF"

	CodeMultipathConfMissing         = "1D506D89"
	CodeDefaultsMissing              = "1D8C438C"
	CodeCheckerTimerMissing          = "FCFE3444"
	CodeCheckerTimeoutMissing        = "70191A9A"
	CodeDevicesMissing               = "797A6031"
	CodeDateraDeviceMissing          = "99B9D136"
	CodeDateraProductInvalid         = "A9DF3F8C"
	CodeBlacklistExceptionsMissing   = "B8C8A19C"
	CodeDateraExceptionMissing       = "09E37E51"
	CodeDateraExceptionVendorInvalid = "9990F32F"
	CodeDateraExceptionProductBad    = "642753A0"

	CodeMgmtPing = "65FC68BB"
	CodeMgmtARP  = "BF6A912A"
	CodeVIP1Ping = "1827147B"
	CodeVIP1ARP  = "3C33D70D"
	CodeVIP2Ping = "3D76CE5A"
	CodeVIP2ARP  = "4F6B8D91"

	CodeCallhomeDisabled = "675E2887"
)

// Host paths inspected by the built-in checks.
const (
	udevRulesPath      = "/etc/udev/rules.d/99-iscsi-luns.rules"
	serialScriptPath   = "/sbin/fetch_device_serial_no.sh"
	grubDefaultsPath   = "/etc/default/grub"
	multipathConfPath  = "/etc/multipath.conf"
	grubCmdlinePrefix  = "GRUB_CMDLINE_LINUX_DEFAULT="
	noopSchedulerParam = "elevator=noop"
)

// Messages reported by the built-in checks.
const (
	MsgUnsupportedOS          = "Unsupported Operating System"
	MsgISCSIAdmMissing        = "iscsiadm is not available, has open-iscsi been installed?"
	MsgUdevRulesMissing       = "Datera udev rules are not installed"
	MsgSerialScriptMissing    = "fetch_device_serial_no.sh is missing from /sbin"
	MsgARPAnnounce            = "net.ipv4.conf.all.arp_announce != 2 in sysctl"
	MsgARPIgnore              = "net.ipv4.conf.all.arp_ignore != 1 in sysctl"
	MsgIRQBalanceActive       = "irqbalance is active"
	MsgCPUPowerMissing        = "cpupower is not installed"
	MsgPerformanceGovernorNA  = "No 'performance' governor found for system.  If this is a VM, governors might not be available and this check can be ignored"
	MsgGrubMissing            = "Could not find default grub file at %s"
	MsgGrubCmdlineMissing     = "GRUB_CMDLINE_LINUX_DEFAULT missing from GRUB file"
	MsgSchedulerNotNoop       = "Scheduler is not set to noop"
	MsgMultipathMissing       = "Multipath binary could not be found, is it installed?"
	MsgMultipathdNotActive    = "multipathd not enabled"
	MsgMultipathConfMissing   = "/etc/multipath.conf file not found"
	MsgDefaultsMissing        = "Missing defaults section"
	MsgDefaultsAttrMissing    = "defaults section missing '%s'"
	MsgDevicesMissing         = "Missing devices section"
	MsgDateraDeviceMissing    = "No DATERA device section found"
	MsgDateraProductInvalid   = "Datera 'product' entry should be \"IBLOCK\""
	MsgBlacklistExcMissing    = "Missing blacklist_exceptions section"
	MsgDateraExceptionMissing = "No Datera blacklist_exceptions section found"
	MsgExceptionVendorInvalid = "Datera blacklist_exceptions vendor entry malformed"
	MsgExceptionProductBad    = "Datera blacklist_exceptions product entry malformed"
	MsgPingFailed             = "Could not ping %s ip %s"
	MsgARPNotReachable        = "Arp state for %s [%s] is not 'REACHABLE'"
	MsgCallhomeDisabled       = "Callhome is not enabled"
)
