package catalog

// Статические таблицы диалекта: ключевые слова и встроенные объекты
// среды исполнения. Только данные, вся логика — в catalog.go.

var keywords = []Keyword{
	{Name: "If", Doc: "Starts a conditional block, terminated by EndIf."},
	{Name: "Then", Doc: "Separates an If condition from its body."},
	{Name: "Else", Doc: "Alternative branch of an If block."},
	{Name: "ElseIf", Doc: "Chained condition inside an If block."},
	{Name: "EndIf", Doc: "Closes an If block."},
	{Name: "While", Doc: "Starts a loop that repeats while the condition holds."},
	{Name: "EndWhile", Doc: "Closes a While block."},
	{Name: "For", Doc: "Starts a counting loop over a variable."},
	{Name: "To", Doc: "Upper bound of a For loop."},
	{Name: "Step", Doc: "Increment of a For loop."},
	{Name: "EndFor", Doc: "Closes a For block."},
	{Name: "Sub", Doc: "Declares a subroutine, terminated by EndSub."},
	{Name: "EndSub", Doc: "Closes a Sub block."},
	{Name: "Goto", Doc: "Jumps to a label."},
	{Name: "And", Doc: "Logical conjunction of two conditions."},
	{Name: "Or", Doc: "Logical disjunction of two conditions."},
}

var objects = []Object{
	{
		Name: "TextWindow",
		Doc:  "Text-mode input and output window.",
		Members: []Member{
			{Name: "Write", Kind: Method, Signature: "(data)", Doc: "Writes text without a line break."},
			{Name: "WriteLine", Kind: Method, Signature: "(data)", Doc: "Writes text followed by a line break."},
			{Name: "Read", Kind: Method, Signature: "()", Doc: "Reads a line of text entered by the user."},
			{Name: "ReadNumber", Kind: Method, Signature: "()", Doc: "Reads a number entered by the user."},
			{Name: "ReadKey", Kind: Method, Signature: "()", Doc: "Reads a single key press."},
			{Name: "Clear", Kind: Method, Signature: "()", Doc: "Clears the window contents."},
			{Name: "Pause", Kind: Method, Signature: "()", Doc: "Waits for the user to press a key."},
			{Name: "PauseIfVisible", Kind: Method, Signature: "()", Doc: "Waits for a key press only when the window is visible."},
			{Name: "PauseWithoutMessage", Kind: Method, Signature: "()", Doc: "Waits for a key press without printing a prompt."},
			{Name: "Show", Kind: Method, Signature: "()", Doc: "Shows the text window."},
			{Name: "Hide", Kind: Method, Signature: "()", Doc: "Hides the text window."},
			{Name: "ForegroundColor", Kind: Property, Doc: "Color of the text to be written."},
			{Name: "BackgroundColor", Kind: Property, Doc: "Background color of the text to be written."},
			{Name: "CursorLeft", Kind: Property, Doc: "Column position of the cursor."},
			{Name: "CursorTop", Kind: Property, Doc: "Row position of the cursor."},
			{Name: "Title", Kind: Property, Doc: "Title of the text window."},
			{Name: "Left", Kind: Property, Doc: "Left position of the window on screen."},
			{Name: "Top", Kind: Property, Doc: "Top position of the window on screen."},
		},
	},
	{
		Name: "GraphicsWindow",
		Doc:  "Drawable graphics window with shapes, text and input events.",
		Members: []Member{
			{Name: "Show", Kind: Method, Signature: "()", Doc: "Shows the graphics window."},
			{Name: "Hide", Kind: Method, Signature: "()", Doc: "Hides the graphics window."},
			{Name: "Clear", Kind: Method, Signature: "()", Doc: "Clears the window contents."},
			{Name: "ShowMessage", Kind: Method, Signature: "(text, title)", Doc: "Shows a message box."},
			{Name: "DrawLine", Kind: Method, Signature: "(x1, y1, x2, y2)", Doc: "Draws a line between two points."},
			{Name: "DrawRectangle", Kind: Method, Signature: "(x, y, width, height)", Doc: "Draws a rectangle outline."},
			{Name: "FillRectangle", Kind: Method, Signature: "(x, y, width, height)", Doc: "Fills a rectangle with the brush color."},
			{Name: "DrawEllipse", Kind: Method, Signature: "(x, y, width, height)", Doc: "Draws an ellipse outline."},
			{Name: "FillEllipse", Kind: Method, Signature: "(x, y, width, height)", Doc: "Fills an ellipse with the brush color."},
			{Name: "DrawTriangle", Kind: Method, Signature: "(x1, y1, x2, y2, x3, y3)", Doc: "Draws a triangle outline."},
			{Name: "FillTriangle", Kind: Method, Signature: "(x1, y1, x2, y2, x3, y3)", Doc: "Fills a triangle with the brush color."},
			{Name: "DrawText", Kind: Method, Signature: "(x, y, text)", Doc: "Draws text at the given position."},
			{Name: "DrawBoundText", Kind: Method, Signature: "(x, y, width, text)", Doc: "Draws text wrapped to a maximum width."},
			{Name: "DrawImage", Kind: Method, Signature: "(image, x, y)", Doc: "Draws a loaded image."},
			{Name: "DrawResizedImage", Kind: Method, Signature: "(image, x, y, width, height)", Doc: "Draws a loaded image scaled to a size."},
			{Name: "GetPixel", Kind: Method, Signature: "(x, y)", Doc: "Returns the color of a pixel."},
			{Name: "SetPixel", Kind: Method, Signature: "(x, y, color)", Doc: "Sets the color of a pixel."},
			{Name: "GetRandomColor", Kind: Method, Signature: "()", Doc: "Returns a random color."},
			{Name: "GetColorFromRGB", Kind: Method, Signature: "(red, green, blue)", Doc: "Builds a color from RGB components."},
			{Name: "BackgroundColor", Kind: Property, Doc: "Background color of the window."},
			{Name: "BrushColor", Kind: Property, Doc: "Brush color used to fill shapes."},
			{Name: "PenColor", Kind: Property, Doc: "Pen color used to draw outlines."},
			{Name: "PenWidth", Kind: Property, Doc: "Pen width used to draw outlines."},
			{Name: "FontName", Kind: Property, Doc: "Font family used to draw text."},
			{Name: "FontSize", Kind: Property, Doc: "Font size used to draw text."},
			{Name: "FontBold", Kind: Property, Doc: "Whether text is drawn bold."},
			{Name: "FontItalic", Kind: Property, Doc: "Whether text is drawn italic."},
			{Name: "Width", Kind: Property, Doc: "Width of the drawing area."},
			{Name: "Height", Kind: Property, Doc: "Height of the drawing area."},
			{Name: "Left", Kind: Property, Doc: "Left position of the window on screen."},
			{Name: "Top", Kind: Property, Doc: "Top position of the window on screen."},
			{Name: "Title", Kind: Property, Doc: "Title of the graphics window."},
			{Name: "CanResize", Kind: Property, Doc: "Whether the user can resize the window."},
			{Name: "LastKey", Kind: Property, Doc: "Last key pressed in the window."},
			{Name: "MouseX", Kind: Property, Doc: "Mouse x-coordinate inside the window."},
			{Name: "MouseY", Kind: Property, Doc: "Mouse y-coordinate inside the window."},
			{Name: "KeyDown", Kind: Event, Doc: "Raised when a key is pressed."},
			{Name: "KeyUp", Kind: Event, Doc: "Raised when a key is released."},
			{Name: "MouseDown", Kind: Event, Doc: "Raised when a mouse button is pressed."},
			{Name: "MouseUp", Kind: Event, Doc: "Raised when a mouse button is released."},
			{Name: "MouseMove", Kind: Event, Doc: "Raised when the mouse moves."},
			{Name: "TextInput", Kind: Event, Doc: "Raised when text is typed."},
		},
	},
	{
		Name: "Math",
		Doc:  "Arithmetic and trigonometric helpers.",
		Members: []Member{
			{Name: "Abs", Kind: Method, Signature: "(number)", Doc: "Returns the absolute value."},
			{Name: "Ceiling", Kind: Method, Signature: "(number)", Doc: "Rounds up to the nearest integer."},
			{Name: "Floor", Kind: Method, Signature: "(number)", Doc: "Rounds down to the nearest integer."},
			{Name: "Round", Kind: Method, Signature: "(number)", Doc: "Rounds to the nearest integer."},
			{Name: "Max", Kind: Method, Signature: "(number1, number2)", Doc: "Returns the larger of two numbers."},
			{Name: "Min", Kind: Method, Signature: "(number1, number2)", Doc: "Returns the smaller of two numbers."},
			{Name: "Power", Kind: Method, Signature: "(baseNumber, exponent)", Doc: "Raises a number to a power."},
			{Name: "SquareRoot", Kind: Method, Signature: "(number)", Doc: "Returns the square root."},
			{Name: "Remainder", Kind: Method, Signature: "(dividend, divisor)", Doc: "Returns the remainder of a division."},
			{Name: "GetRandomNumber", Kind: Method, Signature: "(maxNumber)", Doc: "Returns a random number between 1 and maxNumber."},
			{Name: "Sin", Kind: Method, Signature: "(angle)", Doc: "Sine of an angle in radians."},
			{Name: "Cos", Kind: Method, Signature: "(angle)", Doc: "Cosine of an angle in radians."},
			{Name: "Tan", Kind: Method, Signature: "(angle)", Doc: "Tangent of an angle in radians."},
			{Name: "ArcSin", Kind: Method, Signature: "(sinValue)", Doc: "Angle whose sine is the given value."},
			{Name: "ArcCos", Kind: Method, Signature: "(cosValue)", Doc: "Angle whose cosine is the given value."},
			{Name: "ArcTan", Kind: Method, Signature: "(tanValue)", Doc: "Angle whose tangent is the given value."},
			{Name: "Log", Kind: Method, Signature: "(number)", Doc: "Base-10 logarithm."},
			{Name: "NaturalLog", Kind: Method, Signature: "(number)", Doc: "Natural logarithm."},
			{Name: "GetDegrees", Kind: Method, Signature: "(angle)", Doc: "Converts radians to degrees."},
			{Name: "GetRadians", Kind: Method, Signature: "(angle)", Doc: "Converts degrees to radians."},
			{Name: "Pi", Kind: Property, Doc: "The constant π."},
		},
	},
	{
		Name: "Clock",
		Doc:  "System date and time.",
		Members: []Member{
			{Name: "Time", Kind: Property, Doc: "Current system time."},
			{Name: "Date", Kind: Property, Doc: "Current system date."},
			{Name: "Year", Kind: Property, Doc: "Current year."},
			{Name: "Month", Kind: Property, Doc: "Current month."},
			{Name: "Day", Kind: Property, Doc: "Current day of the month."},
			{Name: "WeekDay", Kind: Property, Doc: "Current day of the week."},
			{Name: "Hour", Kind: Property, Doc: "Current hour."},
			{Name: "Minute", Kind: Property, Doc: "Current minute."},
			{Name: "Second", Kind: Property, Doc: "Current second."},
			{Name: "ElapsedMilliseconds", Kind: Property, Doc: "Milliseconds elapsed since 1900."},
		},
	},
	{
		Name: "Program",
		Doc:  "Running program control.",
		Members: []Member{
			{Name: "Delay", Kind: Method, Signature: "(milliSeconds)", Doc: "Pauses execution for the given time."},
			{Name: "End", Kind: Method, Signature: "()", Doc: "Ends the program."},
			{Name: "GetArgument", Kind: Method, Signature: "(index)", Doc: "Returns a command-line argument."},
			{Name: "ArgumentCount", Kind: Property, Doc: "Number of command-line arguments."},
			{Name: "Directory", Kind: Property, Doc: "Directory the program runs from."},
		},
	},
	{
		Name: "Text",
		Doc:  "String inspection and manipulation.",
		Members: []Member{
			{Name: "Append", Kind: Method, Signature: "(text1, text2)", Doc: "Concatenates two text values."},
			{Name: "GetLength", Kind: Method, Signature: "(text)", Doc: "Returns the number of characters."},
			{Name: "IsSubText", Kind: Method, Signature: "(text, subText)", Doc: "Reports whether subText occurs in text."},
			{Name: "StartsWith", Kind: Method, Signature: "(text, subText)", Doc: "Reports whether text starts with subText."},
			{Name: "EndsWith", Kind: Method, Signature: "(text, subText)", Doc: "Reports whether text ends with subText."},
			{Name: "GetSubText", Kind: Method, Signature: "(text, start, length)", Doc: "Extracts a substring."},
			{Name: "GetSubTextToEnd", Kind: Method, Signature: "(text, start)", Doc: "Extracts a substring up to the end."},
			{Name: "GetIndexOf", Kind: Method, Signature: "(text, subText)", Doc: "Position of the first occurrence of subText."},
			{Name: "ConvertToLowerCase", Kind: Method, Signature: "(text)", Doc: "Lowercases the text."},
			{Name: "ConvertToUpperCase", Kind: Method, Signature: "(text)", Doc: "Uppercases the text."},
			{Name: "GetCharacter", Kind: Method, Signature: "(characterCode)", Doc: "Character for a unicode code point."},
			{Name: "GetCharacterCode", Kind: Method, Signature: "(character)", Doc: "Unicode code point of a character."},
		},
	},
	{
		Name: "Array",
		Doc:  "Associative arrays keyed by index or name.",
		Members: []Member{
			{Name: "GetItemCount", Kind: Method, Signature: "(array)", Doc: "Number of items in the array."},
			{Name: "GetAllIndices", Kind: Method, Signature: "(array)", Doc: "Array of all indices."},
			{Name: "ContainsIndex", Kind: Method, Signature: "(array, index)", Doc: "Reports whether the index exists."},
			{Name: "ContainsValue", Kind: Method, Signature: "(array, value)", Doc: "Reports whether the value exists."},
			{Name: "IsArray", Kind: Method, Signature: "(array)", Doc: "Reports whether the value is an array."},
			{Name: "GetValue", Kind: Method, Signature: "(arrayName, index)", Doc: "Reads a value by index."},
			{Name: "SetValue", Kind: Method, Signature: "(arrayName, index, value)", Doc: "Stores a value by index."},
			{Name: "RemoveValue", Kind: Method, Signature: "(arrayName, index)", Doc: "Removes a value by index."},
		},
	},
	{
		Name: "File",
		Doc:  "File and directory access.",
		Members: []Member{
			{Name: "ReadContents", Kind: Method, Signature: "(filePath)", Doc: "Reads a whole file as text."},
			{Name: "WriteContents", Kind: Method, Signature: "(filePath, contents)", Doc: "Writes text to a file."},
			{Name: "ReadLine", Kind: Method, Signature: "(filePath, lineNumber)", Doc: "Reads one line of a file."},
			{Name: "WriteLine", Kind: Method, Signature: "(filePath, lineNumber, contents)", Doc: "Writes one line of a file."},
			{Name: "InsertLine", Kind: Method, Signature: "(filePath, lineNumber, contents)", Doc: "Inserts a line into a file."},
			{Name: "DeleteLine", Kind: Method, Signature: "(filePath, lineNumber)", Doc: "Deletes a line from a file."},
			{Name: "CopyFile", Kind: Method, Signature: "(sourceFilePath, destinationFilePath)", Doc: "Copies a file."},
			{Name: "DeleteFile", Kind: Method, Signature: "(filePath)", Doc: "Deletes a file."},
			{Name: "CreateDirectory", Kind: Method, Signature: "(directoryPath)", Doc: "Creates a directory."},
			{Name: "DeleteDirectory", Kind: Method, Signature: "(directoryPath)", Doc: "Deletes a directory."},
			{Name: "GetFiles", Kind: Method, Signature: "(directoryPath)", Doc: "Lists files in a directory."},
			{Name: "GetDirectories", Kind: Method, Signature: "(directoryPath)", Doc: "Lists subdirectories of a directory."},
			{Name: "GetTemporaryFilePath", Kind: Method, Signature: "()", Doc: "Path of a fresh temporary file."},
			{Name: "GetSettingsFilePath", Kind: Method, Signature: "()", Doc: "Path of the program settings file."},
			{Name: "LastError", Kind: Property, Doc: "Description of the last file operation error."},
		},
	},
	{
		Name: "Stack",
		Doc:  "Named last-in-first-out stacks.",
		Members: []Member{
			{Name: "PushValue", Kind: Method, Signature: "(stackName, value)", Doc: "Pushes a value onto a stack."},
			{Name: "PopValue", Kind: Method, Signature: "(stackName)", Doc: "Pops the top value off a stack."},
			{Name: "GetCount", Kind: Method, Signature: "(stackName)", Doc: "Number of values on a stack."},
		},
	},
	{
		Name: "Network",
		Doc:  "Simple network downloads.",
		Members: []Member{
			{Name: "DownloadFile", Kind: Method, Signature: "(url)", Doc: "Downloads a file and returns its local path."},
			{Name: "GetWebPageContents", Kind: Method, Signature: "(url)", Doc: "Downloads a web page as text."},
		},
	},
	{
		Name: "Timer",
		Doc:  "Single recurring timer.",
		Members: []Member{
			{Name: "Pause", Kind: Method, Signature: "()", Doc: "Pauses the timer."},
			{Name: "Resume", Kind: Method, Signature: "()", Doc: "Resumes the timer."},
			{Name: "Interval", Kind: Property, Doc: "Tick interval in milliseconds."},
			{Name: "Tick", Kind: Event, Doc: "Raised every interval."},
		},
	},
	{
		Name: "Sound",
		Doc:  "System sounds and audio playback.",
		Members: []Member{
			{Name: "PlayClick", Kind: Method, Signature: "()", Doc: "Plays the click sound."},
			{Name: "PlayClickAndWait", Kind: Method, Signature: "()", Doc: "Plays the click sound and waits for it."},
			{Name: "PlayChime", Kind: Method, Signature: "()", Doc: "Plays the chime sound."},
			{Name: "PlayChimes", Kind: Method, Signature: "()", Doc: "Plays the chimes sound."},
			{Name: "PlayChimesAndWait", Kind: Method, Signature: "()", Doc: "Plays the chimes sound and waits for it."},
			{Name: "PlayBellRing", Kind: Method, Signature: "()", Doc: "Plays the bell ring sound."},
			{Name: "PlayBellRingAndWait", Kind: Method, Signature: "()", Doc: "Plays the bell ring sound and waits for it."},
			{Name: "PlayMusic", Kind: Method, Signature: "(notes)", Doc: "Plays a sequence of musical notes."},
			{Name: "Play", Kind: Method, Signature: "(filePath)", Doc: "Plays an audio file."},
			{Name: "PlayAndWait", Kind: Method, Signature: "(filePath)", Doc: "Plays an audio file and waits for it."},
			{Name: "Stop", Kind: Method, Signature: "(filePath)", Doc: "Stops playback of an audio file."},
		},
	},
	{
		Name: "Desktop",
		Doc:  "Desktop metrics and wallpaper.",
		Members: []Member{
			{Name: "SetWallPaper", Kind: Method, Signature: "(fileOrUrl)", Doc: "Sets the desktop wallpaper."},
			{Name: "Width", Kind: Property, Doc: "Width of the primary desktop."},
			{Name: "Height", Kind: Property, Doc: "Height of the primary desktop."},
		},
	},
	{
		Name: "Shapes",
		Doc:  "Retained shapes drawn on the graphics window.",
		Members: []Member{
			{Name: "AddRectangle", Kind: Method, Signature: "(width, height)", Doc: "Adds a rectangle shape."},
			{Name: "AddEllipse", Kind: Method, Signature: "(width, height)", Doc: "Adds an ellipse shape."},
			{Name: "AddTriangle", Kind: Method, Signature: "(x1, y1, x2, y2, x3, y3)", Doc: "Adds a triangle shape."},
			{Name: "AddLine", Kind: Method, Signature: "(x1, y1, x2, y2)", Doc: "Adds a line shape."},
			{Name: "AddText", Kind: Method, Signature: "(text)", Doc: "Adds a text shape."},
			{Name: "AddImage", Kind: Method, Signature: "(image)", Doc: "Adds an image shape."},
			{Name: "SetText", Kind: Method, Signature: "(shapeName, text)", Doc: "Changes the text of a text shape."},
			{Name: "Move", Kind: Method, Signature: "(shapeName, x, y)", Doc: "Moves a shape to a position."},
			{Name: "Rotate", Kind: Method, Signature: "(shapeName, angle)", Doc: "Rotates a shape."},
			{Name: "Zoom", Kind: Method, Signature: "(shapeName, scaleX, scaleY)", Doc: "Scales a shape."},
			{Name: "Animate", Kind: Method, Signature: "(shapeName, x, y, duration)", Doc: "Animates a shape to a position."},
			{Name: "GetX", Kind: Method, Signature: "(shapeName)", Doc: "X-coordinate of a shape."},
			{Name: "GetY", Kind: Method, Signature: "(shapeName)", Doc: "Y-coordinate of a shape."},
			{Name: "GetOpacity", Kind: Method, Signature: "(shapeName)", Doc: "Opacity of a shape."},
			{Name: "SetOpacity", Kind: Method, Signature: "(shapeName, level)", Doc: "Sets the opacity of a shape."},
			{Name: "HideShape", Kind: Method, Signature: "(shapeName)", Doc: "Hides a shape."},
			{Name: "ShowShape", Kind: Method, Signature: "(shapeName)", Doc: "Shows a hidden shape."},
			{Name: "Remove", Kind: Method, Signature: "(shapeName)", Doc: "Removes a shape."},
		},
	},
	{
		Name: "Turtle",
		Doc:  "Logo-style turtle graphics.",
		Members: []Member{
			{Name: "Show", Kind: Method, Signature: "()", Doc: "Shows the turtle."},
			{Name: "Hide", Kind: Method, Signature: "()", Doc: "Hides the turtle."},
			{Name: "Move", Kind: Method, Signature: "(distance)", Doc: "Moves the turtle forward."},
			{Name: "MoveTo", Kind: Method, Signature: "(x, y)", Doc: "Moves the turtle to a position."},
			{Name: "Turn", Kind: Method, Signature: "(angle)", Doc: "Turns the turtle by an angle."},
			{Name: "TurnLeft", Kind: Method, Signature: "()", Doc: "Turns the turtle 90 degrees left."},
			{Name: "TurnRight", Kind: Method, Signature: "()", Doc: "Turns the turtle 90 degrees right."},
			{Name: "PenDown", Kind: Method, Signature: "()", Doc: "Lowers the pen so moves draw."},
			{Name: "PenUp", Kind: Method, Signature: "()", Doc: "Raises the pen so moves do not draw."},
			{Name: "X", Kind: Property, Doc: "X-coordinate of the turtle."},
			{Name: "Y", Kind: Property, Doc: "Y-coordinate of the turtle."},
			{Name: "Angle", Kind: Property, Doc: "Heading of the turtle in degrees."},
			{Name: "Speed", Kind: Property, Doc: "Movement speed from 1 to 10."},
		},
	},
	{
		Name: "Mouse",
		Doc:  "Global mouse state.",
		Members: []Member{
			{Name: "HideCursor", Kind: Method, Signature: "()", Doc: "Hides the mouse cursor."},
			{Name: "ShowCursor", Kind: Method, Signature: "()", Doc: "Shows the mouse cursor."},
			{Name: "MouseX", Kind: Property, Doc: "X-coordinate of the cursor on screen."},
			{Name: "MouseY", Kind: Property, Doc: "Y-coordinate of the cursor on screen."},
			{Name: "IsLeftButtonDown", Kind: Property, Doc: "Whether the left button is pressed."},
			{Name: "IsRightButtonDown", Kind: Property, Doc: "Whether the right button is pressed."},
		},
	},
	{
		Name: "ImageList",
		Doc:  "Loading and measuring images.",
		Members: []Member{
			{Name: "LoadImage", Kind: Method, Signature: "(fileNameOrUrl)", Doc: "Loads an image and returns its name."},
			{Name: "GetWidthOfImage", Kind: Method, Signature: "(imageName)", Doc: "Width of a loaded image."},
			{Name: "GetHeightOfImage", Kind: Method, Signature: "(imageName)", Doc: "Height of a loaded image."},
		},
	},
	{
		Name: "Dictionary",
		Doc:  "Online dictionary lookups.",
		Members: []Member{
			{Name: "GetDefinition", Kind: Method, Signature: "(word)", Doc: "Definition of a word."},
		},
	},
	{
		Name: "Controls",
		Doc:  "Buttons and text boxes on the graphics window.",
		Members: []Member{
			{Name: "AddButton", Kind: Method, Signature: "(caption, left, top)", Doc: "Adds a button."},
			{Name: "AddTextBox", Kind: Method, Signature: "(left, top)", Doc: "Adds a single-line text box."},
			{Name: "AddMultiLineTextBox", Kind: Method, Signature: "(left, top)", Doc: "Adds a multi-line text box."},
			{Name: "GetButtonCaption", Kind: Method, Signature: "(buttonName)", Doc: "Caption of a button."},
			{Name: "SetButtonCaption", Kind: Method, Signature: "(buttonName, caption)", Doc: "Changes the caption of a button."},
			{Name: "GetTextBoxText", Kind: Method, Signature: "(textBoxName)", Doc: "Text of a text box."},
			{Name: "SetTextBoxText", Kind: Method, Signature: "(textBoxName, text)", Doc: "Changes the text of a text box."},
			{Name: "SetSize", Kind: Method, Signature: "(controlName, width, height)", Doc: "Resizes a control."},
			{Name: "Move", Kind: Method, Signature: "(control, x, y)", Doc: "Moves a control."},
			{Name: "HideControl", Kind: Method, Signature: "(controlName)", Doc: "Hides a control."},
			{Name: "ShowControl", Kind: Method, Signature: "(controlName)", Doc: "Shows a hidden control."},
			{Name: "Remove", Kind: Method, Signature: "(controlName)", Doc: "Removes a control."},
			{Name: "LastClickedButton", Kind: Property, Doc: "Button that was clicked most recently."},
			{Name: "LastTypedTextBox", Kind: Property, Doc: "Text box that was typed into most recently."},
			{Name: "ButtonClicked", Kind: Event, Doc: "Raised when a button is clicked."},
			{Name: "TextTyped", Kind: Event, Doc: "Raised when text box contents change."},
		},
	},
	{
		Name: "Flickr",
		Doc:  "Random pictures from Flickr.",
		Members: []Member{
			{Name: "GetRandomPicture", Kind: Method, Signature: "(tag)", Doc: "URL of a random picture for a tag."},
			{Name: "GetPictureOfMoment", Kind: Method, Signature: "()", Doc: "URL of the current picture of the moment."},
		},
	},
}
