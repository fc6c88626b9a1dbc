// Package commands defines the keyring CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create (or with --force, replace) the local keyring
//   - fingerprint    Print the keyring fingerprint and identity ID
//   - export         Write the public keyring as DER
//   - import         File a peer's public keyring under a name
//   - peers          List imported peers
//   - sign           Sign a file with the local keyring
//   - verify         Check a signature against a peer or the local keyring
//   - seal           Sign and encrypt a file to a peer
//   - open           Decrypt a sealed file and check the sender
//
// # Implementation
//
// The root command loads <home>/config.yaml, builds the logger and the
// dependency graph (stores, services) before any subcommand runs. The
// passphrase comes from -p or, failing that, $KEYRING_PASSPHRASE.
package commands
