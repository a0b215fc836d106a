package shared

import "fmt"

// HelpText returns the help menu printed for the -h flag
func HelpText(program string) string {
	return fmt.Sprintf("Help Menu\n"+
		"EthereumKeyPairGenerator gets only one argument with following syntax : %s 5\n"+
		"Argument should be an integer in following range [%d,%d], otherwise application will throw error.\n"+
		"In order to display this menu write %s as argument\n",
		program, MinKeyPairs, MaxKeyPairs, HelpFlag)
}
