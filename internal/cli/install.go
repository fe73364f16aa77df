package cli

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Default service configuration
const (
	defaultServicePort = 8080
	defaultServiceUser = "sget"
	serviceName        = "sget"
	binaryPath         = "/usr/local/bin/sget"
	serviceFilePath    = "/etc/systemd/system/sget.service"
	configDirPath      = "/etc/sget"
	configFilePath     = "/etc/sget/config.yml"
)

var (
	installPort int
	installUser string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install sget as a systemd service",
	Long: `Install sget as a systemd service running the API server.

This command will:
  - Copy the sget binary to /usr/local/bin/
  - Create a systemd service file
  - Create a dedicated user
  - Enable and start the service

Requires root/sudo privileges.

Examples:
  sudo sget install              # Defaults (port 8080, user sget)
  sudo sget install -p 9000      # Custom port
  sudo sget install -u media     # Custom service user`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInstall(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the sget systemd service",
	Long: `Remove the sget systemd service.

This command will:
  - Stop the service if running
  - Disable the service
  - Remove the service file

The binary at /usr/local/bin/sget and the config are NOT removed.

Requires root/sudo privileges.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUninstall(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	installCmd.Flags().IntVarP(&installPort, "port", "p", defaultServicePort, "service port")
	installCmd.Flags().StringVarP(&installUser, "user", "u", defaultServiceUser, "user to run the service as")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runInstall() error {
	if runtime.GOOS != "linux" {
		fmt.Println("sget install is only supported on Linux with systemd.")
		fmt.Println("Run the server directly instead: sget serve")
		return nil
	}

	if !hasSystemd() {
		fmt.Println("systemd not found. This command requires systemd.")
		return nil
	}

	if os.Geteuid() != 0 {
		return fmt.Errorf("this command requires root privileges. Please run with sudo")
	}

	fmt.Println("\nInstalling sget service...")
	fmt.Println()

	if serviceExists() {
		fmt.Println("  Stopping existing service...")
		runSystemctl("stop", serviceName)
	}

	if installUser != "root" {
		if !userExists(installUser) {
			fmt.Printf("  Creating user '%s'...\n", installUser)
			if err := createServiceUser(installUser); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Printf("  ✓ User '%s' created\n", installUser)
		} else {
			fmt.Printf("  ✓ User '%s' exists\n", installUser)
		}
	}

	fmt.Println("  Copying binary to /usr/local/bin/...")
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	if err := copyFile(executable, binaryPath); err != nil {
		return fmt.Errorf("failed to copy binary: %w", err)
	}
	if err := os.Chmod(binaryPath, 0755); err != nil {
		return fmt.Errorf("failed to set binary permissions: %w", err)
	}
	fmt.Println("  ✓ Binary installed")

	fmt.Println("  Creating service configuration...")
	if err := os.MkdirAll(configDirPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	configContent := fmt.Sprintf("# sget service configuration\nlisten: \":%d\"\n", installPort)
	if err := os.WriteFile(configFilePath, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Println("  ✓ Configuration created")

	fmt.Println("  Creating systemd service...")
	if err := os.WriteFile(serviceFilePath, []byte(generateServiceFile()), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}
	fmt.Println("  ✓ Service file created")

	fmt.Println("  Enabling service...")
	if err := runSystemctl("daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}
	if err := runSystemctl("enable", serviceName); err != nil {
		return fmt.Errorf("failed to enable service: %w", err)
	}
	fmt.Println("  ✓ Service enabled")

	fmt.Println("  Starting service...")
	if err := runSystemctl("start", serviceName); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	fmt.Println("  ✓ Service started")

	fmt.Println()
	printSuccessBox(installPort)

	return nil
}

func runUninstall() error {
	if runtime.GOOS != "linux" {
		fmt.Println("sget uninstall is only supported on Linux with systemd.")
		return nil
	}

	if os.Geteuid() != 0 {
		return fmt.Errorf("this command requires root privileges. Please run with sudo")
	}

	fmt.Println("Uninstalling sget service...")
	fmt.Println()

	if serviceExists() {
		fmt.Println("  Stopping service...")
		runSystemctl("stop", serviceName)
		fmt.Println("  ✓ Service stopped")
	}

	fmt.Println("  Disabling service...")
	runSystemctl("disable", serviceName)
	fmt.Println("  ✓ Service disabled")

	if _, err := os.Stat(serviceFilePath); err == nil {
		fmt.Println("  Removing service file...")
		os.Remove(serviceFilePath)
		runSystemctl("daemon-reload")
		fmt.Println("  ✓ Service file removed")
	}

	fmt.Println()
	fmt.Println("sget service has been removed.")
	fmt.Println()
	fmt.Println("The following were NOT removed:")
	fmt.Printf("  - Binary: %s\n", binaryPath)
	fmt.Printf("  - Config: %s\n", configFilePath)
	fmt.Println()
	fmt.Println("To completely remove sget:")
	fmt.Printf("  sudo rm %s\n", binaryPath)
	fmt.Printf("  sudo rm -rf %s\n", configDirPath)

	return nil
}

// Helper functions

func hasSystemd() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

func serviceExists() bool {
	cmd := exec.Command("systemctl", "status", serviceName)
	err := cmd.Run()
	// Exit code 3 means the unit exists but is stopped
	return err == nil || cmd.ProcessState.ExitCode() == 3
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func userExists(username string) bool {
	_, err := user.Lookup(username)
	return err == nil
}

func createServiceUser(username string) error {
	cmd := exec.Command("useradd", "-r", "-s", "/bin/false", "-d", "/var/lib/sget", username)
	return cmd.Run()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0755)
}

func generateServiceFile() string {
	return fmt.Sprintf(`# /etc/systemd/system/sget.service
# Generated by sget install

[Unit]
Description=sget download-link API server
After=network.target

[Service]
Type=simple
User=%s
Group=%s
Environment=SGET_CONFIG_DIR=%s
ExecStart=%s serve --listen :%d
Restart=always
RestartSec=5

# Security hardening
NoNewPrivileges=true
ProtectSystem=strict
ProtectHome=true
ReadWritePaths=%s
PrivateTmp=true

[Install]
WantedBy=multi-user.target
`, installUser, installUser, configDirPath, binaryPath, installPort, configDirPath)
}

func printSuccessBox(port int) {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2)

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("248"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var content strings.Builder
	content.WriteString(successStyle.Render("✓ sget service installed successfully!"))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("API:      "))
	content.WriteString(valueStyle.Render("http://localhost:" + strconv.Itoa(port) + "/api/{platform}?url=..."))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Health:   "))
	content.WriteString(valueStyle.Render("http://localhost:" + strconv.Itoa(port) + "/healthz"))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Status:   "))
	content.WriteString(valueStyle.Render("sudo systemctl status sget"))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Logs:     "))
	content.WriteString(valueStyle.Render("sudo journalctl -u sget -f"))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Remove:   "))
	content.WriteString(valueStyle.Render("sudo sget uninstall"))

	fmt.Println(boxStyle.Render(content.String()))
}
